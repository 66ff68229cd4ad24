package ledger

import (
	"RouletteLedger/internal/models"
	"RouletteLedger/pkg/errors"
	"reflect"
	"testing"

	"github.com/sanity-io/litter"
)

func record(t *testing.T, l *Ledger, games ...models.Game) {
	t.Helper()
	for _, g := range games {
		if err := l.RecordGame(g.Result, g.Stake, g.Number); err != nil {
			t.Fatalf("RecordGame(%d, %d, %d): %v", g.Result, g.Stake, g.Number, err)
		}
	}
}

func results(rs ...int64) []models.Game {
	games := make([]models.Game, len(rs))
	for i, r := range rs {
		games[i] = models.Game{Result: r, Stake: 100, Number: 7}
	}
	return games
}

func TestNewDefaults(t *testing.T) {
	l := New()

	if l.Bankroll() != DefaultBankroll || l.InitialBankroll() != DefaultBankroll {
		t.Fatalf("bankroll = %d, want %d", l.Bankroll(), DefaultBankroll)
	}
	if l.Len() != 0 || len(l.History()) != 0 || len(l.Stakes()) != 0 || len(l.Numbers()) != 0 {
		t.Fatal("new ledger must be empty")
	}
}

func TestNewAcceptsAnyBankroll(t *testing.T) {
	for _, v := range []int64{0, -500, 1} {
		if got := New(WithInitialBankroll(v)).Bankroll(); got != v {
			t.Errorf("bankroll = %d, want %d", got, v)
		}
	}
}

func TestLengthsStayInSync(t *testing.T) {
	l := New()
	for i := 0; i < 100; i++ {
		record(t, l, models.Game{Result: int64(i - 50), Stake: int64(i), Number: i % 37})

		h, s, n := len(l.History()), len(l.Stakes()), len(l.Numbers())
		if h != i+1 || s != h || n != h {
			t.Fatalf("after %d games: history=%d stakes=%d numbers=%d", i+1, h, s, n)
		}
	}
}

func TestBankrollAccounting(t *testing.T) {
	rs := []int64{-3500, 7000, 0, -100, 250, -99999}
	l := New(WithInitialBankroll(5000))
	record(t, l, results(rs...)...)

	want := int64(5000)
	for _, r := range rs {
		want += r
	}
	if l.Bankroll() != want {
		t.Fatalf("bankroll = %d, want %d", l.Bankroll(), want)
	}
}

func TestSnapshotIsolation(t *testing.T) {
	l := New()
	record(t, l, models.Game{Result: 10, Stake: 20, Number: 30})

	h, s, n, g := l.History(), l.Stakes(), l.Numbers(), l.Games()
	h[0], s[0], n[0], g[0].Result = -1, -1, -1, -1
	_ = append(h, 99)

	if !reflect.DeepEqual(l.History(), []int64{10}) ||
		!reflect.DeepEqual(l.Stakes(), []int64{20}) ||
		!reflect.DeepEqual(l.Numbers(), []int{30}) ||
		!reflect.DeepEqual(l.Games(), []models.Game{{Result: 10, Stake: 20, Number: 30}}) {
		t.Fatalf("ledger changed through a snapshot: %s", litter.Sdump(l.Games()))
	}
}

func TestStats(t *testing.T) {
	tests := []struct {
		name    string
		results []int64
		want    models.Stats
	}{
		{
			name:    "empty ledger",
			results: nil,
			want:    models.Stats{},
		},
		{
			// extremes are seeded at 0, the least negative loss is not reported
			name:    "all losses keep max profit at zero",
			results: []int64{-500, -200, -1000},
			want: models.Stats{TotalGames: 3, TotalProfit: -1700, MaxProfit: 0, MaxLoss: -1000,
				Wins: 0, WinRate: 0, HasWinRate: true},
		},
		{
			name:    "all wins keep max loss at zero",
			results: []int64{500, 200, 1000},
			want: models.Stats{TotalGames: 3, TotalProfit: 1700, MaxProfit: 1000, MaxLoss: 0,
				Wins: 3, WinRate: 100, HasWinRate: true},
		},
		{
			name:    "break-even is not a win",
			results: []int64{100, -50, 0, 200},
			want: models.Stats{TotalGames: 4, TotalProfit: 250, MaxProfit: 200, MaxLoss: -50,
				Wins: 2, WinRate: 50, HasWinRate: true},
		},
		{
			name:    "only break-even",
			results: []int64{0, 0},
			want:    models.Stats{TotalGames: 2, WinRate: 0, HasWinRate: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New()
			record(t, l, results(tt.results...)...)

			if got := l.Stats(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Stats() = %s, want %s", litter.Sdump(got), litter.Sdump(tt.want))
			}
		})
	}
}

func TestEmptyStatsHasNoWinRate(t *testing.T) {
	m := New().Stats().Map()

	want := map[string]interface{}{
		models.KeyTotalGames:  0,
		models.KeyTotalProfit: int64(0),
		models.KeyMaxProfit:   int64(0),
		models.KeyMaxLoss:     int64(0),
		models.KeyWins:        0,
	}
	if !reflect.DeepEqual(m, want) {
		t.Fatalf("Map() = %#v, want %#v", m, want)
	}
	if _, ok := m[models.KeyWinRate]; ok {
		t.Fatal("win_rate must be absent on an empty ledger")
	}
}

func TestSessionScenario(t *testing.T) {
	l := New(WithInitialBankroll(100000))
	record(t, l,
		models.Game{Result: -3500, Stake: 3500, Number: 17},
		models.Game{Result: 7000, Stake: 500, Number: 0},
	)

	if l.Bankroll() != 103500 {
		t.Errorf("bankroll = %d, want 103500", l.Bankroll())
	}
	if !reflect.DeepEqual(l.History(), []int64{-3500, 7000}) {
		t.Errorf("history = %v", l.History())
	}
	if !reflect.DeepEqual(l.Stakes(), []int64{3500, 500}) {
		t.Errorf("stakes = %v", l.Stakes())
	}
	if !reflect.DeepEqual(l.Numbers(), []int{17, 0}) {
		t.Errorf("numbers = %v", l.Numbers())
	}

	want := map[string]interface{}{
		models.KeyTotalGames:  2,
		models.KeyTotalProfit: int64(3500),
		models.KeyMaxProfit:   int64(7000),
		models.KeyMaxLoss:     int64(-3500),
		models.KeyWins:        1,
		models.KeyWinRate:     50.0,
	}
	if got := l.Stats().Map(); !reflect.DeepEqual(got, want) {
		t.Errorf("stats = %#v, want %#v", got, want)
	}
}

func TestNumbersAreOpaqueByDefault(t *testing.T) {
	l := New()
	record(t, l, models.Game{Result: 1, Stake: 1, Number: -3}, models.Game{Result: 1, Stake: 1, Number: 1000})

	if !reflect.DeepEqual(l.Numbers(), []int{-3, 1000}) {
		t.Fatalf("numbers = %v", l.Numbers())
	}
}

func TestStrictNumberRange(t *testing.T) {
	l := New(WithNumberRange(0, 36))
	record(t, l, models.Game{Result: 100, Stake: 100, Number: 36})

	err := l.RecordGame(500, 100, 37)
	if !errors.Is(err, ErrArgument) {
		t.Fatalf("expected ErrArgument, got %v", err)
	}
	if errors.Is(err, ErrAllocation) {
		t.Fatal("argument error must be distinct from allocation error")
	}
	if l.Len() != 1 || l.Bankroll() != DefaultBankroll+100 {
		t.Fatalf("rejected game changed the ledger: len=%d bankroll=%d", l.Len(), l.Bankroll())
	}
}

func TestAllocationFailureLeavesStateUnchanged(t *testing.T) {
	l := New(WithMaxGames(2))
	record(t, l, results(10, 20)...)

	before := l.Games()
	err := l.RecordGame(30, 100, 7)
	if !errors.Is(err, ErrAllocation) {
		t.Fatalf("expected ErrAllocation, got %v", err)
	}
	if !errors.HasStack(err) {
		t.Error("expected stack trace on allocation error")
	}

	if !reflect.DeepEqual(l.Games(), before) || l.Bankroll() != DefaultBankroll+30 {
		t.Fatalf("failed record changed the ledger: %s", litter.Sdump(l.Games()))
	}
	if len(l.History()) != 2 || len(l.Stakes()) != 2 || len(l.Numbers()) != 2 {
		t.Fatal("sequences out of sync after failed record")
	}
}

func TestGrowKeepsRecords(t *testing.T) {
	l := New(WithMaxGames(40))
	record(t, l, results(make([]int64, 40)...)...)

	if l.Len() != 40 {
		t.Fatalf("len = %d, want 40", l.Len())
	}
	if cap(l.games) != 40 {
		t.Fatalf("capacity = %d, must not exceed the max games bound", cap(l.games))
	}
}
