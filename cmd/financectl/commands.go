package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/google/subcommands"
	"github.com/target/finance-web/internal/domain/finance"
)

var errUsage = errors.New("usage")

func commands(c *cli) []subcommands.Command {
	return []subcommands.Command{
		&listCmd{cli: c},
		&getCmd{cli: c},
		&createCmd{cli: c},
		&updateCmd{cli: c},
		&deleteCmd{cli: c},
		&statsCmd{cli: c},
		&clearCmd{cli: c},
		&loginCmd{cli: c},
		&passwdCmd{cli: c},
	}
}

// recordID returns the single positional id argument.
func recordID(f *flag.FlagSet) (string, error) {
	if f.NArg() != 1 || strings.TrimSpace(f.Arg(0)) == "" {
		return "", fmt.Errorf("%w: expected exactly one record id", errUsage)
	}
	return strings.TrimSpace(f.Arg(0)), nil
}

// readRecord decodes a record from -data, or from stdin when -data is empty.
func (c *cli) readRecord(data string) (finance.Record, error) {
	var raw []byte
	if strings.TrimSpace(data) != "" {
		raw = []byte(data)
	} else {
		b, err := io.ReadAll(c.stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		raw = b
	}

	var rec finance.Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("%w: record must be a JSON object: %w", errUsage, err)
	}
	if rec == nil {
		return nil, fmt.Errorf("%w: record must be a JSON object", errUsage)
	}
	return rec, nil
}

func (c *cli) done(what string) error {
	_, err := fmt.Fprintln(c.stdout, what)
	return err
}

type listCmd struct {
	*cli
	query string
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list all finance records" }
func (*listCmd) Usage() string {
	return `list [-query <jmespath>]

  Prints every record as JSON. -query filters the output, e.g.
  -query "[?expense > ` + "`100`" + `].category".
`
}

func (l *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&l.query, "query", "", "JMESPath expression applied to the output")
}

func (l *listCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	records, err := l.finance.Records(ctx)
	if err == nil {
		err = l.emit(records, l.query)
	}
	if err != nil {
		return l.fail(ctx, l.Name(), err)
	}
	return subcommands.ExitSuccess
}

type getCmd struct {
	*cli
	query string
}

func (*getCmd) Name() string     { return "get" }
func (*getCmd) Synopsis() string { return "show one finance record" }
func (*getCmd) Usage() string {
	return `get [-query <jmespath>] <id>
`
}

func (g *getCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&g.query, "query", "", "JMESPath expression applied to the output")
}

func (g *getCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	id, err := recordID(f)
	if err != nil {
		return g.fail(ctx, g.Name(), err)
	}
	rec, err := g.finance.Record(ctx, id)
	if err == nil {
		err = g.emit(rec, g.query)
	}
	if err != nil {
		return g.fail(ctx, g.Name(), err)
	}
	return subcommands.ExitSuccess
}

type createCmd struct {
	*cli
	data string
}

func (*createCmd) Name() string     { return "create" }
func (*createCmd) Synopsis() string { return "create a finance record" }
func (*createCmd) Usage() string {
	return `create [-data <json>]

  The record is read from -data, or from stdin when -data is omitted.
`
}

func (cr *createCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&cr.data, "data", "", "record as a JSON object")
}

func (cr *createCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	rec, err := cr.readRecord(cr.data)
	if err == nil {
		err = cr.finance.CreateRecord(ctx, rec)
	}
	if err == nil {
		err = cr.done("created")
	}
	if err != nil {
		return cr.fail(ctx, cr.Name(), err)
	}
	return subcommands.ExitSuccess
}

type updateCmd struct {
	*cli
	data string
}

func (*updateCmd) Name() string     { return "update" }
func (*updateCmd) Synopsis() string { return "replace a finance record" }
func (*updateCmd) Usage() string {
	return `update [-data <json>] <id>
`
}

func (u *updateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&u.data, "data", "", "record as a JSON object")
}

func (u *updateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	id, err := recordID(f)
	if err != nil {
		return u.fail(ctx, u.Name(), err)
	}
	rec, err := u.readRecord(u.data)
	if err == nil {
		err = u.finance.UpdateRecord(ctx, id, rec)
	}
	if err == nil {
		err = u.done("updated")
	}
	if err != nil {
		return u.fail(ctx, u.Name(), err)
	}
	return subcommands.ExitSuccess
}

type deleteCmd struct {
	*cli
}

func (*deleteCmd) Name() string             { return "delete" }
func (*deleteCmd) Synopsis() string         { return "delete a finance record" }
func (*deleteCmd) Usage() string            { return "delete <id>\n" }
func (*deleteCmd) SetFlags(_ *flag.FlagSet) {}

func (d *deleteCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	id, err := recordID(f)
	if err == nil {
		err = d.finance.DeleteRecord(ctx, id)
	}
	if err == nil {
		err = d.done("deleted")
	}
	if err != nil {
		return d.fail(ctx, d.Name(), err)
	}
	return subcommands.ExitSuccess
}

type statsCmd struct {
	*cli
	asJSON bool
	query  string
}

func (*statsCmd) Name() string     { return "stats" }
func (*statsCmd) Synopsis() string { return "show income, expense and balance totals" }
func (*statsCmd) Usage() string {
	return `stats [-json] [-query <jmespath>]
`
}

func (s *statsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&s.asJSON, "json", false, "print the statistics as JSON")
	f.StringVar(&s.query, "query", "", "JMESPath expression applied to the JSON output (implies -json)")
}

func (s *statsCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	stats, err := s.finance.Statistics(ctx)
	if err == nil {
		if s.asJSON || s.query != "" {
			err = s.emit(stats, s.query)
		} else {
			err = writeStatsTable(s.stdout, stats)
		}
	}
	if err != nil {
		return s.fail(ctx, s.Name(), err)
	}
	return subcommands.ExitSuccess
}

func writeStatsTable(w io.Writer, stats *finance.Statistics) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	rows := [][2]string{
		{"Total income", stats.TotalIncome.StringFixed(2)},
		{"Total expense", stats.TotalExpense.StringFixed(2)},
		{"Balance", stats.Balance.StringFixed(2)},
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(tw, "%s\t%s\t\n", r[0], r[1]); err != nil {
			return fmt.Errorf("write stats: %w", err)
		}
	}
	for _, group := range []struct {
		label  string
		totals []finance.CategoryTotal
	}{
		{"income", stats.IncomeByCategory},
		{"expense", stats.ExpenseByCategory},
	} {
		for _, ct := range group.totals {
			if _, err := fmt.Fprintf(tw, "%s %s\t%s\t\n", group.label, ct.Category, ct.Total.StringFixed(2)); err != nil {
				return fmt.Errorf("write stats: %w", err)
			}
		}
	}
	return tw.Flush()
}

type clearCmd struct {
	*cli
	yes bool
}

func (*clearCmd) Name() string     { return "clear" }
func (*clearCmd) Synopsis() string { return "delete every finance record" }
func (*clearCmd) Usage() string {
	return `clear -yes

  Removes all records on the backend. -yes is required.
`
}

func (cl *clearCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&cl.yes, "yes", false, "confirm clearing all data")
}

func (cl *clearCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !cl.yes {
		return cl.fail(ctx, cl.Name(), fmt.Errorf("%w: refusing to clear all data without -yes", errUsage))
	}
	err := cl.finance.ClearAll(ctx)
	if err == nil {
		err = cl.done("cleared")
	}
	if err != nil {
		return cl.fail(ctx, cl.Name(), err)
	}
	return subcommands.ExitSuccess
}

type loginCmd struct {
	*cli
	username string
	password string
}

func (*loginCmd) Name() string     { return "login" }
func (*loginCmd) Synopsis() string { return "check credentials against the backend" }
func (*loginCmd) Usage() string {
	return `login -username <name> -password <password>
`
}

func (l *loginCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&l.username, "username", "", "account name")
	f.StringVar(&l.password, "password", "", "account password")
}

func (l *loginCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	res, err := l.auth.Login(ctx, finance.Credentials{Username: l.username, Password: l.password})
	if err == nil {
		err = l.done("logged in as " + res.Username)
	}
	if err != nil {
		return l.fail(ctx, l.Name(), err)
	}
	return subcommands.ExitSuccess
}

type passwdCmd struct {
	*cli
	username    string
	oldPassword string
	newPassword string
}

func (*passwdCmd) Name() string     { return "passwd" }
func (*passwdCmd) Synopsis() string { return "change an account password" }
func (*passwdCmd) Usage() string {
	return `passwd -username <name> -old <password> -new <password>
`
}

func (p *passwdCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.username, "username", "", "account name")
	f.StringVar(&p.oldPassword, "old", "", "current password")
	f.StringVar(&p.newPassword, "new", "", "new password")
}

func (p *passwdCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	err := p.auth.ChangePassword(ctx, finance.PasswordChange{
		Username:    p.username,
		OldPassword: p.oldPassword,
		NewPassword: p.newPassword,
	})
	if err == nil {
		err = p.done("password changed")
	}
	if err != nil {
		return p.fail(ctx, p.Name(), err)
	}
	return subcommands.ExitSuccess
}
