package mysql

import (
	"time"

	"github.com/stakewatch/stakewatch-backend/internal/model"
)

func (s *RepositorySuite) TestReattributeRewardsOverwritesAttribution() {
	s.seedIdentities(intAddrA, intAddrB)
	ts := time.Unix(1_710_000_000, 0).UTC()

	original := newReward(intAddrA, "tx-1", 0, 100, ts)

	s.expectObserve("upsert_rewards", 1)
	_, err := s.repo.UpsertRewards(s.testCtx, []model.StakeReward{original})
	s.Require().NoError(err)

	corrected := original
	corrected.IdentityAddress = intAddrB
	corrected.SourceAddress = intAddrB

	s.expectObserve("reattribute_rewards", 1)
	_, err = s.repo.ReattributeRewards(s.testCtx, []model.StakeReward{corrected})
	s.Require().NoError(err)

	// Still one row for the outpoint, now attributed to the new identity.
	s.Equal(1, s.countRows("staking_rewards"))

	s.expectObserve("rewards_by_identity", 2)
	rewards, err := s.repo.RewardsByIdentity(s.testCtx, intAddrB, 0, 1_000)
	s.Require().NoError(err)
	s.Require().Len(rewards, 1)
	s.Equal(intAddrB, rewards[0].IdentityAddress)
	s.Equal(intAddrB, rewards[0].SourceAddress)

	rewards, err = s.repo.RewardsByIdentity(s.testCtx, intAddrA, 0, 1_000)
	s.Require().NoError(err)
	s.Empty(rewards)
}

func (s *RepositorySuite) TestReattributeRewardsInsertsNewRows() {
	s.seedIdentities(intAddrA)
	ts := time.Unix(1_710_000_000, 0).UTC()

	s.expectObserve("reattribute_rewards", 1)
	_, err := s.repo.ReattributeRewards(s.testCtx, []model.StakeReward{
		newReward(intAddrA, "tx-new", 0, 100, ts),
	})
	s.Require().NoError(err)
	s.Equal(1, s.countRows("staking_rewards"))
}
