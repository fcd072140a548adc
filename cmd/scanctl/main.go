// Command scanctl is the operator client for a running scanner: `scanctl
// status` prints the progress snapshot, `scanctl stop` requests a graceful
// stop. Starting a scan is launching the scanner binary itself.
package main

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/jessevdk/go-flags"
)

type config struct {
	AdminURL string        `long:"admin-url" env:"SCANCTL_ADMIN_URL" description:"scanner admin endpoint" default:"http://127.0.0.1:8080"`
	Timeout  time.Duration `long:"timeout" env:"SCANCTL_TIMEOUT" description:"request timeout" default:"10s"`
}

func main() {
	cfg := config{}

	args, err := flags.ParseArgs(&cfg, os.Args[1:])
	if err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		fmt.Fprintf(os.Stderr, "failed to parse flags: %v\n", err)
		os.Exit(1)
	}

	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "usage: scanctl [options] status|stop")
		os.Exit(1)
	}

	client := &http.Client{Timeout: cfg.Timeout}

	switch args[0] {
	case "status":
		err = request(client, http.MethodGet, cfg.AdminURL+"/status", os.Stdout)
	case "stop":
		err = request(client, http.MethodPost, cfg.AdminURL+"/stop", io.Discard)
		if err == nil {
			fmt.Println("stop requested")
		}
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", args[0])
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func request(client *http.Client, method, url string, out io.Writer) error {
	req, err := http.NewRequest(method, url, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	res, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("reach scanner admin endpoint: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("scanner responded %s", res.Status)
	}
	if _, err := io.Copy(out, res.Body); err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	return nil
}
