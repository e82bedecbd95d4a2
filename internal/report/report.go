// Package report renders vesting records, schedules and weight tables for the terminal or as JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"time"

	solana "github.com/gagliardetto/solana-go"

	"governance-addins-go/internal/journal"
	"governance-addins-go/internal/vesting"
	"governance-addins-go/internal/weights"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ValidFormats lists the accepted --output values.
var ValidFormats = []string{FormatText, FormatJSON}

// IsValidFormat reports whether format is one of ValidFormats.
func IsValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

const timeLayout = "2006-01-02 15:04:05"

// Printer writes reports in one format.
type Printer struct {
	Format string
	W      io.Writer
}

// New returns a printer for format; unknown formats print text.
func New(w io.Writer, format string) *Printer {
	return &Printer{Format: format, W: w}
}

func (p *Printer) isJSON() bool { return p.Format == FormatJSON }

func (p *Printer) encode(v any) error {
	enc := json.NewEncoder(p.W)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// RecordView is a vesting record as it is reported.
type RecordView struct {
	VestingAccount solana.PublicKey   `json:"vesting_account"`
	Owner          solana.PublicKey   `json:"owner"`
	Mint           solana.PublicKey   `json:"mint"`
	Token          solana.PublicKey   `json:"token"`
	Realm          *solana.PublicKey  `json:"realm"`
	Schedule       []vesting.Schedule `json:"schedule"`
	Total          uint64             `json:"total"`
}

// NewRecordView pairs a decoded record with the account it was read from.
func NewRecordView(account solana.PublicKey, rec *vesting.Record) (RecordView, error) {
	total, err := rec.Amount()
	if err != nil {
		return RecordView{}, err
	}
	schedule := rec.Schedule
	if schedule == nil {
		schedule = []vesting.Schedule{}
	}
	return RecordView{
		VestingAccount: account,
		Owner:          rec.Owner,
		Mint:           rec.Mint,
		Token:          rec.Token,
		Realm:          rec.Realm,
		Schedule:       schedule,
		Total:          total,
	}, nil
}

// Schedule prints a schedule list followed by its total.
func (p *Printer) Schedule(schedules []vesting.Schedule) error {
	total, err := vesting.Total(schedules)
	if err != nil {
		return err
	}
	if p.isJSON() {
		if schedules == nil {
			schedules = []vesting.Schedule{}
		}
		return p.encode(struct {
			Schedule []vesting.Schedule `json:"schedule"`
			Total    uint64             `json:"total"`
		}{schedules, total})
	}
	p.schedule(schedules, total)
	return nil
}

func (p *Printer) schedule(schedules []vesting.Schedule, total uint64) {
	fmt.Fprintln(p.W, "Schedule:")
	for i, item := range schedules {
		fmt.Fprintf(p.W, "  %2d: amount %d, timestamp %d (%s)\n", i, item.Amount, item.ReleaseTime, formatTime(item.ReleaseTime))
	}
	fmt.Fprintf(p.W, "Total amount: %d\n", total)
}

func formatTime(ts uint64) string {
	return time.Unix(int64(ts), 0).UTC().Format(timeLayout)
}

func (p *Printer) record(view RecordView) {
	fmt.Fprintf(p.W, "Vesting Owner Address: %s\n", view.Owner)
	fmt.Fprintf(p.W, "Vesting Mint Address:  %s\n", view.Mint)
	fmt.Fprintf(p.W, "Vesting Token Address: %s\n", view.Token)
	realm := "None"
	if view.Realm != nil {
		realm = fmt.Sprintf("Some(%s)", view.Realm)
	}
	fmt.Fprintf(p.W, "Vesting Realm: %s\n", realm)
	p.schedule(view.Schedule, view.Total)
}

// Info prints one record looked up by its vesting token account.
func (p *Printer) Info(programID solana.PublicKey, view RecordView) error {
	if p.isJSON() {
		return p.encode(struct {
			ProgramID solana.PublicKey `json:"program_id"`
			RecordView
		}{programID, view})
	}
	fmt.Fprint(p.W, "\n---------------VESTING--CONTRACT--INFO-----------------\n\n")
	fmt.Fprintf(p.W, "Program ID: %s\n", programID)
	fmt.Fprintf(p.W, "Vesting Account Pubkey: %s\n", view.VestingAccount)
	fmt.Fprintf(p.W, "Vesting Token Account Pubkey: %s\n", view.Token)
	p.record(view)
	return nil
}

// Records prints every record of one owner.
func (p *Printer) Records(views []RecordView) error {
	if p.isJSON() {
		if views == nil {
			views = []RecordView{}
		}
		return p.encode(views)
	}
	for _, view := range views {
		fmt.Fprintf(p.W, "\nVesting Account Pubkey: %s\n", view.VestingAccount)
		p.record(view)
	}
	return nil
}

// ListRow is one line of the locked tokens list.
type ListRow struct {
	Token  solana.PublicKey `json:"token"`
	Owner  solana.PublicKey `json:"owner"`
	Amount uint64           `json:"amount"`
}

// SortRows orders rows by amount, largest first; ties keep their order.
func SortRows(rows []ListRow) {
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Amount > rows[j].Amount })
}

// List prints the locked tokens list. rows must already be sorted.
func (p *Printer) List(rows []ListRow) error {
	var total uint64
	for _, row := range rows {
		next := total + row.Amount
		if next < total {
			return vesting.ErrAmountOverflow
		}
		total = next
	}
	if p.isJSON() {
		if rows == nil {
			rows = []ListRow{}
		}
		return p.encode(struct {
			Total    uint64    `json:"total"`
			Accounts []ListRow `json:"accounts"`
		}{total, rows})
	}
	fmt.Fprint(p.W, "\n----------------- LOCKED TOKENS LIST ------------------\n\n")
	fmt.Fprintf(p.W, "Total amount: %d.%09d\n", total/weights.TokenMult, total%weights.TokenMult)
	fmt.Fprintln(p.W, "Vesting                                         Owner                                                      Amount")
	for _, row := range rows {
		fmt.Fprintf(p.W, "%s\t%s\t%12d.%09d\n", row.Token, row.Owner, row.Amount/weights.TokenMult, row.Amount%weights.TokenMult)
	}
	return nil
}

// Weights prints the compiled fixed voter weight table.
func (p *Printer) Weights(params weights.Params, voters []weights.Voter, total uint64) error {
	if p.isJSON() {
		if voters == nil {
			voters = []weights.Voter{}
		}
		return p.encode(struct {
			Params weights.Params  `json:"params"`
			Total  uint64          `json:"total"`
			Voters []weights.Voter `json:"voters"`
		}{params, total, voters})
	}
	fmt.Fprintf(p.W, "Network: %s\n", params.Network)
	fmt.Fprintf(p.W, "Token mult: %s\n", params.TokenMult)
	fmt.Fprintf(p.W, "Extra tokens: %s\n", params.ExtraTokens)
	fmt.Fprintf(p.W, "Supply fraction: %s\n", params.SupplyFraction)
	fmt.Fprintf(p.W, "Voters: %d\n", len(voters))
	for i, v := range voters {
		fmt.Fprintf(p.W, "  %2d: %s %d\n", i, v.Address, v.Weight)
	}
	fmt.Fprintf(p.W, "Total weight: %d\n", total)
	return nil
}

// Submitted prints the outcome of a transaction.
func (p *Printer) Submitted(command, status string, sig solana.Signature) error {
	if p.isJSON() {
		return p.encode(struct {
			Command   string           `json:"command"`
			Status    string           `json:"status"`
			Signature solana.Signature `json:"signature"`
		}{command, status, sig})
	}
	fmt.Fprintf(p.W, "%s: %s %s\n", command, status, sig)
	return nil
}

// DryRun prints a transaction that was built and signed but not sent.
func (p *Printer) DryRun(entry journal.Entry) error {
	if p.isJSON() {
		return p.encode(entry)
	}
	fmt.Fprintf(p.W, "%s: %s %s\n", entry.Command, entry.Status, entry.Signature)
	fmt.Fprintf(p.W, "Compute units: %d\n", entry.ComputeUnits)
	fmt.Fprintf(p.W, "Priority price: %d\n", entry.PriorityPrice)
	names := make([]string, 0, len(entry.Accounts))
	for name := range entry.Accounts {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Fprintln(p.W, "Accounts:")
	for _, name := range names {
		fmt.Fprintf(p.W, "  %s: %s\n", name, entry.Accounts[name])
	}
	return nil
}
