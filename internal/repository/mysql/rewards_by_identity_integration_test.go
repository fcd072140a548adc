package mysql

import (
	"time"

	"github.com/stakewatch/stakewatch-backend/internal/model"
)

func (s *RepositorySuite) TestRewardsByIdentityFiltersAndOrders() {
	s.seedIdentities(intAddrA, intAddrB)
	base := time.Unix(1_710_000_000, 0).UTC()

	s.expectObserve("upsert_rewards", 1)
	_, err := s.repo.UpsertRewards(s.testCtx, []model.StakeReward{
		newReward(intAddrA, "tx-late", 0, 300, base.Add(2*time.Hour)),
		newReward(intAddrA, "tx-early", 0, 100, base),
		newReward(intAddrA, "tx-out-of-range", 0, 900, base.Add(time.Hour)),
		newReward(intAddrB, "tx-other", 0, 200, base),
	})
	s.Require().NoError(err)

	s.expectObserve("rewards_by_identity", 1)
	rewards, err := s.repo.RewardsByIdentity(s.testCtx, intAddrA, 50, 500)
	s.Require().NoError(err)
	s.Require().Len(rewards, 2)
	s.Equal("tx-early", rewards[0].TxID)
	s.Equal("tx-late", rewards[1].TxID)
	s.Equal(uint64(600_000_000), rewards[0].AmountSats)
	s.Equal(base, rewards[0].BlockTime.UTC())
}
