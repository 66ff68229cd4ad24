package cmd

import (
	"RouletteLedger/internal/config"
	"RouletteLedger/internal/ledger"
	"RouletteLedger/pkg/errors"
	"bytes"
	"context"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sanity-io/litter"
	"github.com/spf13/viper"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	root := NewRootCommand(out, errOut)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())

	return out.String(), err
}

func tempDir(t *testing.T) string {
	t.Helper()
	dir, err := ioutil.TempDir("", "ledger-cmd")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.RemoveAll(dir) })
	return dir
}

func TestPlay(t *testing.T) {
	out, err := run(t, "play", "--bankroll", "100000", "--game=-3500,3500,17", "--game", "7000,500,0")
	if err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{
		"History: [-35.00 70.00]",
		"Stakes:  [35.00 5.00]",
		"Numbers: [17 0]",
		"Win rate:",
		"50.0%",
		"€1035.00",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("no %q in:\n%s", want, out)
		}
	}
}

func TestPlayYAML(t *testing.T) {
	out, err := run(t, "play", "--yaml")
	if err != nil {
		t.Fatal(err)
	}
	want := "total_games: 0\ntotal_profit: 0\nmax_profit: 0\nmax_loss: 0\nwins: 0\n"
	if out != want {
		t.Fatalf("got:\n%s\nwant:\n%s", out, want)
	}
}

func TestPlayBadGame(t *testing.T) {
	_, err := run(t, "play", "-g", "1,2")
	if !errors.Is(err, ledger.ErrArgument) {
		t.Fatalf("expected ErrArgument, got %v", err)
	}
}

func TestPlayStrictConfig(t *testing.T) {
	path := filepath.Join(tempDir(t), "config.yaml")
	if err := ioutil.WriteFile(path, []byte("ledger:\n  strict_numbers: true\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := run(t, "--config", path, "play", "-g", "100,100,37")
	if !errors.Is(err, ledger.ErrArgument) {
		t.Fatalf("expected ErrArgument, got %v", err)
	}
}

func TestReplay(t *testing.T) {
	path := filepath.Join(tempDir(t), "session.yaml")
	script := `
name: scenario
players:
  - id: player_1
rounds:
  - number: 17
    bets:
      player_1: {result: -3500, stake: 3500}
  - number: 0
    bets:
      player_1: {result: 7000, stake: 500}
`
	if err := ioutil.WriteFile(path, []byte(script), 0644); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, "replay", path)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"### scenario", "=== Round 2 === Winning number: 0", "--- player_1", "€1035.00"} {
		if !strings.Contains(out, want) {
			t.Errorf("no %q in:\n%s", want, out)
		}
	}

	out, err = run(t, "replay", "--summary", path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out, "=== Round") {
		t.Errorf("summary printed rounds:\n%s", out)
	}
}

func TestReplayMissingScript(t *testing.T) {
	if _, err := run(t, "replay", filepath.Join(tempDir(t), "missing.yaml")); err == nil {
		t.Fatal("expected error")
	}
}

func TestReadConfig(t *testing.T) {
	dir := tempDir(t)
	path := filepath.Join(dir, "default_config.yaml")

	if _, err := run(t, "config", "--out", path); err != nil {
		t.Fatal(err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		t.Fatal(err)
	}

	cfg := config.GetDefaultConfig()
	if err := v.Unmarshal(&cfg); err != nil {
		t.Fatal(err)
	}

	pretty := litter.Options{StripPackageNames: true, HidePrivateFields: true}
	t.Logf("%s", pretty.Sdump(cfg))

	if cfg.Ledger.InitialBankroll != ledger.DefaultBankroll {
		t.Fatalf("initial_bankroll = %d", cfg.Ledger.InitialBankroll)
	}
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "ledger "+Ver) {
		t.Fatalf("version output %q", out)
	}
}

func TestLogFileClosedOnError(t *testing.T) {
	dir := tempDir(t)
	logPath := filepath.Join(dir, "ledger.log")
	cfgPath := filepath.Join(dir, "config.yaml")
	if err := ioutil.WriteFile(cfgPath, []byte("logger:\n  file: "+logPath+"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	root, a := newRootCommand(ioutil.Discard, ioutil.Discard)
	root.SetArgs([]string{"--config", cfgPath, "--debug", "play", "-g", "1,2"})

	if err := execute(context.Background(), root, a); !errors.Is(err, ledger.ErrArgument) {
		t.Fatalf("expected ErrArgument, got %v", err)
	}
	if a.closeLog != nil {
		t.Fatal("log file left open after a failed command")
	}

	data, err := ioutil.ReadFile(logPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "config loaded") {
		t.Fatalf("log file content:\n%s", data)
	}
}
