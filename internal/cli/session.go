package cli

import (
	"context"
	"errors"
	"time"

	solana "github.com/gagliardetto/solana-go"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"governance-addins-go/internal/budget"
	"governance-addins-go/internal/chain"
	"governance-addins-go/internal/config"
	"governance-addins-go/internal/execution"
	"governance-addins-go/internal/journal"
	"governance-addins-go/internal/metrics"
	"governance-addins-go/internal/report"
	"governance-addins-go/internal/util"
	"governance-addins-go/internal/vesting"
)

// session is everything a command needs once flags, config and env are merged.
type session struct {
	cfg        *config.Config
	log        zerolog.Logger
	printer    *report.Printer
	prompt     chain.Prompt
	governance solana.PublicKey
	program    solana.PublicKey
	dryRun     bool

	client   *chain.Client
	executor *execution.Executor
	recorder journal.Recorder
	ledger   *journal.Ledger // entries of this run, reported on --dry-run
}

// loadConfig merges the config file, the environment and explicitly set flags, in that
// order of increasing precedence.
func (o *RootOptions) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadOptional(o.ConfigPath)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "load config", err)
	}
	if err := config.ApplyEnv(cfg); err != nil {
		return nil, WrapExitError(ExitCommandError, "invalid environment", err)
	}

	flags := cmd.Flags()
	if flags.Changed("url") {
		cfg.RPC.URL = o.URL
	}
	if flags.Changed("ws-url") {
		cfg.RPC.WSURL = o.WSURL
	}
	if flags.Changed("commitment") {
		cfg.RPC.Commitment = o.Commitment
	}
	if flags.Changed("compute-unit-price") {
		cfg.Budget.ComputeUnitPrice = o.ComputeUnitPrice
	}
	if flags.Changed("governance_program_id") {
		cfg.Programs.Governance = o.GovernanceProgramID
	}
	if flags.Changed("vesting_program_id") {
		cfg.Programs.Vesting = o.VestingProgramID
	}
	if flags.Changed("output") {
		cfg.App.Output = o.Output
	}
	if flags.Changed("journal") {
		cfg.App.JournalPath = o.Journal
	}
	if flags.Changed("metrics-file") {
		cfg.App.MetricsFile = o.MetricsFile
	}
	if o.Verbose {
		cfg.App.LogLevel = "debug"
	}
	if !report.IsValidFormat(cfg.App.Output) {
		return nil, usageError("invalid output %q: must be one of %v", cfg.App.Output, report.ValidFormats)
	}
	return cfg, nil
}

// newSession builds the offline part of a session.
func (o *RootOptions) newSession(cmd *cobra.Command) (*session, error) {
	cfg, err := o.loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	governance, err := parsePubkey("governance_program_id", cfg.Programs.Governance)
	if err != nil {
		return nil, err
	}
	program, err := parsePubkey("vesting_program_id", cfg.Programs.Vesting)
	if err != nil {
		return nil, err
	}
	stdin := o.Stdin
	if stdin == nil {
		stdin = cmd.InOrStdin()
	}
	return &session{
		cfg:        cfg,
		log:        util.NewLoggerTo(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), TimeFormat: time.Kitchen, NoColor: true}, cfg.App.LogLevel),
		printer:    report.New(cmd.OutOrStdout(), cfg.App.Output),
		prompt:     chain.NewPrompt(stdin, cmd.ErrOrStderr()),
		governance: governance,
		program:    program,
		dryRun:     o.DryRun,
	}, nil
}

// connect opens the RPC client, the journal and the executor.
func (s *session) connect() error {
	if s.client != nil {
		return nil
	}
	recorder, err := journal.Open(s.cfg.App.JournalPath)
	if err != nil {
		return err
	}
	s.ledger = journal.NewLedger(1)
	s.recorder = journal.Multi{recorder, s.ledger}

	client := chain.NewClient(s.cfg.RPC.URL, s.cfg.RPC.WSURL, s.cfg.RPC.Commitment, s.log)
	client.Limits = budget.Limits{
		MaxComputeUnitPrice:    s.cfg.Budget.MaxComputeUnitPrice,
		MaxPriorityFeeLamports: s.cfg.Budget.MaxPriorityFeeLamports,
	}
	s.client = client

	s.executor = execution.NewExecutor(client, s.recorder, s.log)
	s.executor.DryRun = s.dryRun
	if price := s.cfg.Budget.ComputeUnitPrice; price > 0 {
		s.executor.ComputeUnitPrice = &price
	}
	s.log.Debug().Str("url", s.cfg.RPC.URL).Str("commitment", s.cfg.RPC.Commitment).Msg("connected")
	return nil
}

func (s *session) context(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return context.WithTimeout(parent, time.Duration(s.cfg.RPC.TimeoutSecs)*time.Second)
}

// close flushes the journal and the metrics file.
func (s *session) close() error {
	var errs []error
	if s.recorder != nil {
		errs = append(errs, s.recorder.Close())
	}
	errs = append(errs, metrics.WriteFile(s.cfg.App.MetricsFile))
	return errors.Join(errs...)
}

// signer resolves a keypair flag; an empty flag falls back to the configured wallet.
func (s *session) signer(flag, source string) (solana.PrivateKey, error) {
	if source == "" {
		source = s.cfg.Wallet.Keypair
	}
	if source == "" {
		return nil, usageError("--%s is required", flag)
	}
	key, err := chain.ResolveSigner(source, s.prompt)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "invalid --"+flag, err)
	}
	return key, nil
}

// payer resolves --payer, defaulting to fallback.
func (s *session) payer(source string, fallback solana.PrivateKey) (solana.PrivateKey, error) {
	if source == "" {
		return fallback, nil
	}
	return s.signer("payer", source)
}

// record fetches and decodes the vesting record of vestingToken.
func (s *session) record(ctx context.Context, vestingToken solana.PublicKey) (solana.PublicKey, *vesting.Record, error) {
	addr, err := vesting.VestingAddress(s.program, vestingToken)
	if err != nil {
		return addr, nil, err
	}
	data, err := s.client.AccountData(ctx, addr)
	if err != nil {
		return addr, nil, err
	}
	rec, err := vesting.DecodeRecord(data)
	if err != nil {
		return addr, nil, err
	}
	return addr, rec, nil
}

// submit runs req through the executor and prints the outcome.
func (s *session) submit(ctx context.Context, req execution.Request) error {
	res, err := s.executor.Submit(ctx, req)
	if err != nil {
		return err
	}
	if entries := s.ledger.Snapshot(); res.Status == journal.StatusDryRun && len(entries) > 0 {
		return s.printer.DryRun(entries[len(entries)-1])
	}
	return s.printer.Submitted(req.Command, res.Status, res.Signature)
}

// run wraps a command body with session setup and teardown.
func (o *RootOptions) run(cmd *cobra.Command, online bool, body func(ctx context.Context, s *session) error) (err error) {
	s, err := o.newSession(cmd)
	if err != nil {
		return err
	}
	if online {
		if err := s.connect(); err != nil {
			return err
		}
	}
	defer func() {
		if cerr := s.close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	ctx, cancel := s.context(cmd.Context())
	defer cancel()
	if err := body(ctx, s); err != nil {
		s.log.Error().Err(err).Str("cmd", cmd.Name()).Msg("command failed")
		return err
	}
	return nil
}
