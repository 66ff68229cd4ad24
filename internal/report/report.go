// Package report renders ledger data for people. Amounts are cents
// internally and shown in currency units here.
package report

import (
	"RouletteLedger/internal/models"
	"RouletteLedger/internal/session"
	"RouletteLedger/pkg/errors"
	"RouletteLedger/pkg/tools/numbers"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v2"
)

const currency = "€"

func Money(cents int64) string {
	return currency + numbers.FormatCents(cents)
}

func SignedMoney(cents int64) string {
	s := numbers.FormatSignedCents(cents)
	return s[:1] + currency + s[1:]
}

// WriteStats prints the final session summary
func WriteStats(w io.Writer, stats models.Stats, bankroll int64) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "Total spins played:\t%d\n", stats.TotalGames)
	fmt.Fprintf(tw, "Total profit:\t%s\n", SignedMoney(stats.TotalProfit))
	if rate, ok := stats.WinRateValue(); ok {
		fmt.Fprintf(tw, "Win rate:\t%s\n", numbers.FormatPercent(rate))
	} else {
		fmt.Fprintf(tw, "Win rate:\t%s\n", "n/a")
	}
	fmt.Fprintf(tw, "Biggest win:\t%s\n", SignedMoney(stats.MaxProfit))
	fmt.Fprintf(tw, "Biggest loss:\t%s\n", SignedMoney(stats.MaxLoss))
	fmt.Fprintf(tw, "Final bankroll:\t%s\n", Money(bankroll))

	return errors.WrapStack(tw.Flush())
}

// WriteRound prints one round as a table, skipped bets are marked
func WriteRound(w io.Writer, round, number int, results []models.RoundResult) error {
	if len(results) == 0 {
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)

	fmt.Fprintf(w, "=== Round %d === Winning number: %d\n", round, number)
	fmt.Fprint(tw, "Player\tBet\tProfit\tBankroll\t\n")
	for _, rs := range results {
		profit := SignedMoney(rs.Profit)
		if rs.Skipped {
			profit = "skipped"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t\n", rs.PlayerID, Money(rs.Stake), profit, Money(rs.Bankroll))
	}

	return errors.WrapStack(tw.Flush())
}

// WriteSequences prints the three recorded sequences of one ledger
func WriteSequences(w io.Writer, history, stakes []int64, nums []int) error {
	_, err := fmt.Fprintf(w, "History: %s\nStakes:  %s\nNumbers: %v\n",
		joinMoney(history), joinMoney(stakes), nums)
	return errors.WrapStack(err)
}

func WriteOutcome(w io.Writer, o *session.Outcome) error {
	if _, err := fmt.Fprintf(w, "### %s\n", o.Name); err != nil {
		return errors.WrapStack(err)
	}
	for i, rd := range o.Rounds {
		if err := WriteRound(w, i+1, rd.Number, rd.Results); err != nil {
			return err
		}
	}
	for _, p := range o.Players {
		fmt.Fprintf(w, "\n--- %s (%s, %d rounds, started with %s)\n", p.PlayerID, p.Status, p.Rounds, Money(p.InitialBankroll))
		if err := WriteStats(w, p.Stats, p.Bankroll); err != nil {
			return err
		}
	}
	return nil
}

// MarshalStats encodes the stats mapping, win_rate only when present
func MarshalStats(stats models.Stats) ([]byte, error) {
	m := stats.Map()
	ms := yaml.MapSlice{
		{Key: models.KeyTotalGames, Value: m[models.KeyTotalGames]},
		{Key: models.KeyTotalProfit, Value: m[models.KeyTotalProfit]},
		{Key: models.KeyMaxProfit, Value: m[models.KeyMaxProfit]},
		{Key: models.KeyMaxLoss, Value: m[models.KeyMaxLoss]},
		{Key: models.KeyWins, Value: m[models.KeyWins]},
	}
	if rate, ok := m[models.KeyWinRate]; ok {
		ms = append(ms, yaml.MapItem{Key: models.KeyWinRate, Value: rate})
	}

	data, err := yaml.Marshal(ms)
	if err != nil {
		return nil, errors.WrapStack(err, "encode stats")
	}
	return data, nil
}

func joinMoney(vals []int64) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = numbers.FormatCents(v)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
