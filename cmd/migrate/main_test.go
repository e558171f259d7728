package main

import (
	"testing"

	appconfig "github.com/sehatplus/notification-service/internal/config"
	"github.com/sehatplus/notification-service/pkg/logging"
)

func TestParseArgs(t *testing.T) {
	cases := []struct {
		name    string
		args    []string
		want    command
		wantErr bool
	}{
		{"no args defaults to up", nil, command{name: "up"}, false},
		{"explicit up", []string{"up"}, command{name: "up"}, false},
		{"down", []string{"down"}, command{name: "down"}, false},
		{"force with version", []string{"force", "3"}, command{name: "force", version: 3}, false},
		{"force without version", []string{"force"}, command{}, true},
		{"force with bad version", []string{"force", "three"}, command{}, true},
		{"unknown command", []string{"sideways"}, command{}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseArgs(tc.args)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for %v", tc.args)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseArgs(%v) returned error: %v", tc.args, err)
			}
			if got != tc.want {
				t.Fatalf("parseArgs(%v) = %+v, want %+v", tc.args, got, tc.want)
			}
		})
	}
}

func TestRunRequiresDatabaseURL(t *testing.T) {
	logger := logging.New("error", "text")
	err := run(&appconfig.Config{}, logger, command{name: "up"})
	if err == nil {
		t.Fatal("expected an error when DATABASE_URL is unset")
	}
}
