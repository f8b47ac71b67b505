package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/verte-zerg/hoopmetrics/internal/entry"
	"github.com/verte-zerg/hoopmetrics/internal/generator"
	"github.com/verte-zerg/hoopmetrics/internal/model"
	"github.com/verte-zerg/hoopmetrics/internal/stats"
	"github.com/verte-zerg/hoopmetrics/internal/store"
)

var (
	addDate      string
	addMade      string
	addAttempted string
	addType      string
	addLocation  string
	addNotes     string

	historySearch string

	statsRecent int

	compareSort  string
	compareOrder string

	seedCount int

	exportFormat string
	exportOutput string

	resetYes bool
)

func newAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Log a shooting session",
		Args:  cobra.NoArgs,
		RunE:  runAddCmd,
	}
	cmd.Flags().StringVar(&addDate, "date", "", "session date (YYYY-MM-DD, default: today)")
	cmd.Flags().StringVar(&addMade, "made", "", "shots made")
	cmd.Flags().StringVar(&addAttempted, "attempted", "", "shots attempted")
	cmd.Flags().StringVar(&addType, "type", defaultType, "shot type ("+shotTypeList()+")")
	cmd.Flags().StringVar(&addLocation, "location", "", "where you shot")
	cmd.Flags().StringVar(&addNotes, "notes", "", "free-form notes")
	return cmd
}

func runAddCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := loadFileConfig()
	if err != nil {
		return err
	}
	applyStringConfig(cmd, "type", &addType, fileCfg.Session.Type)

	db, sessions, err := openSessions(cmd, fileCfg)
	if err != nil {
		return err
	}
	defer closeDB(db)

	var ids entry.IDSource
	for _, s := range sessions.Sessions() {
		ids.Observe(s.ID)
	}
	s, err := entry.ParseWith(entry.Input{
		Date:           addDate,
		ShotsMade:      addMade,
		ShotsAttempted: addAttempted,
		ShotType:       addType,
		Location:       addLocation,
		Notes:          addNotes,
	}, time.Now(), &ids)
	if err != nil {
		return err
	}
	if err := sessions.Add(context.Background(), s); err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Added session #%d: %s  %s  %d/%d (%s%%)\n",
		sessions.Len()-1, stats.LongDate(s.Date), s.ShotType.Label(), s.ShotsMade, s.ShotsAttempted, s.Percentage)
	if err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func shotTypeList() string {
	names := make([]string, len(model.ShotTypes))
	for i, st := range model.ShotTypes {
		names[i] = string(st)
	}
	return strings.Join(names, ", ")
}

func newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <index>",
		Short: "Delete a session by its # in history",
		Args:  cobra.ExactArgs(1),
		RunE:  runRemoveCmd,
	}
}

func runRemoveCmd(cmd *cobra.Command, args []string) error {
	index, err := strconv.Atoi(strings.TrimSpace(args[0]))
	if err != nil {
		return fmt.Errorf("invalid index %q: %w", args[0], err)
	}
	fileCfg, err := loadFileConfig()
	if err != nil {
		return err
	}
	db, sessions, err := openSessions(cmd, fileCfg)
	if err != nil {
		return err
	}
	defer closeDB(db)

	all := sessions.Sessions()
	if err := sessions.RemoveAt(context.Background(), index); err != nil {
		return err
	}
	s := all[index]
	if _, err := fmt.Fprintf(cmd.OutOrStdout(), "Removed session: %s  %s  %d/%d\n",
		stats.LongDate(s.Date), s.ShotType.Label(), s.ShotsMade, s.ShotsAttempted); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List sessions, newest first",
		Args:  cobra.NoArgs,
		RunE:  runHistoryCmd,
	}
	cmd.Flags().StringVar(&historySearch, "search", "", "filter by date, location, notes or shot type")
	return cmd
}

func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := loadFileConfig()
	if err != nil {
		return err
	}
	db, sessions, err := openSessions(cmd, fileCfg)
	if err != nil {
		return err
	}
	defer closeDB(db)

	rows := stats.FilterSessions(sessions.Sessions(), historySearch)
	if err := stats.RenderHistory(cmd.OutOrStdout(), rows, stats.TerminalWidth()); err != nil {
		return fmt.Errorf("failed to render history: %w", err)
	}
	return nil
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print aggregate shooting stats",
		Args:  cobra.NoArgs,
		RunE:  runStatsCmd,
	}
	cmd.Flags().IntVar(&statsRecent, "recent", defaultRecent, "sessions shown in the trend")
	return cmd
}

func runStatsCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := loadFileConfig()
	if err != nil {
		return err
	}
	applyIntConfig(cmd, "recent", &statsRecent, fileCfg.Dashboard.Recent)
	if statsRecent < 0 {
		return fmt.Errorf("--recent must be >= 0")
	}
	db, sessions, err := openSessions(cmd, fileCfg)
	if err != nil {
		return err
	}
	defer closeDB(db)

	out := cmd.OutOrStdout()
	if err := stats.RenderSummary(out, sessions.Sessions(), statsRecent); err != nil {
		return fmt.Errorf("failed to render stats: %w", err)
	}
	saved, err := db.UpdatedAt(context.Background(), sessions.Key())
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read last save time: %w", err)
	}
	if _, err := fmt.Fprintf(out, "Last saved: %s\n", humanize.Time(saved)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Rank your shooting against NBA careers",
		Args:  cobra.NoArgs,
		RunE:  runCompareCmd,
	}
	cmd.Flags().StringVar(&compareSort, "sort", defaultSort, "sort column")
	cmd.Flags().StringVar(&compareOrder, "order", defaultOrder, "sort order (asc|desc)")
	return cmd
}

func runCompareCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := loadFileConfig()
	if err != nil {
		return err
	}
	applyStringConfig(cmd, "sort", &compareSort, fileCfg.Compare.Sort)
	applyStringConfig(cmd, "order", &compareOrder, fileCfg.Compare.Order)
	field, dir, err := validateSort(compareSort, compareOrder)
	if err != nil {
		return err
	}
	db, sessions, err := openSessions(cmd, fileCfg)
	if err != nil {
		return err
	}
	defer closeDB(db)

	cmp := stats.Compare(sessions.Stats(), sessions.Len())
	out := cmd.OutOrStdout()
	if err := stats.RenderRankings(out, cmp); err != nil {
		return fmt.Errorf("failed to render rankings: %w", err)
	}
	if err := stats.RenderPlayerTable(out, stats.SortPlayers(cmp.Players, field, dir), field, dir); err != nil {
		return fmt.Errorf("failed to render players: %w", err)
	}
	return nil
}

func newSeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Append randomly generated demo sessions",
		Args:  cobra.NoArgs,
		RunE:  runSeedCmd,
	}
	cmd.Flags().IntVar(&seedCount, "count", defaultSeed, "number of sessions to generate")
	return cmd
}

func runSeedCmd(cmd *cobra.Command, _ []string) error {
	if seedCount <= 0 {
		return fmt.Errorf("--count must be > 0")
	}
	fileCfg, err := loadFileConfig()
	if err != nil {
		return err
	}
	db, sessions, err := openSessions(cmd, fileCfg)
	if err != nil {
		return err
	}
	defer closeDB(db)

	existing := sessions.Sessions()
	gen := generator.New()
	for _, s := range existing {
		gen.Observe(s.ID)
	}
	generated := gen.Generate(seedCount, time.Now())
	if err := sessions.Replace(context.Background(), append(existing, generated...)); err != nil {
		return err
	}
	logErrf("Generated %d sessions (%d total)\n", len(generated), sessions.Len())
	return nil
}

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export sessions as JSON or YAML",
		Args:  cobra.NoArgs,
		RunE:  runExportCmd,
	}
	cmd.Flags().StringVar(&exportFormat, "format", "json", "output format (json|yaml)")
	cmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")
	return cmd
}

func runExportCmd(cmd *cobra.Command, _ []string) error {
	format := strings.ToLower(strings.TrimSpace(exportFormat))
	if format != "json" && format != "yaml" {
		return fmt.Errorf("unknown format %q (use json or yaml)", exportFormat)
	}
	fileCfg, err := loadFileConfig()
	if err != nil {
		return err
	}
	db, sessions, err := openSessions(cmd, fileCfg)
	if err != nil {
		return err
	}
	defer closeDB(db)

	if exportOutput == "" {
		return exportSessions(cmd.OutOrStdout(), sessions.Sessions(), format)
	}
	f, err := os.Create(exportOutput)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", exportOutput, err)
	}
	if err := exportSessions(f, sessions.Sessions(), format); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", exportOutput, err)
	}
	logErrf("Wrote %d sessions to %s\n", sessions.Len(), exportOutput)
	return nil
}

func exportSessions(w io.Writer, sessions []model.Session, format string) error {
	if sessions == nil {
		sessions = []model.Session{}
	}
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(sessions); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return nil
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(sessions); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		return nil
	}
}

func newResetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all sessions",
		Args:  cobra.NoArgs,
		RunE:  runResetCmd,
	}
	cmd.Flags().BoolVar(&resetYes, "yes", false, "confirm deletion")
	return cmd
}

func runResetCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := loadFileConfig()
	if err != nil {
		return err
	}
	db, sessions, err := openSessions(cmd, fileCfg)
	if err != nil {
		return err
	}
	defer closeDB(db)

	if !resetYes {
		logErrln("Re-run with --yes to delete all sessions.")
		return fmt.Errorf("refusing to delete %d sessions without --yes", sessions.Len())
	}
	if err := db.Delete(context.Background(), sessions.Key()); err != nil {
		return fmt.Errorf("failed to delete sessions: %w", err)
	}
	logErrf("Deleted %d sessions.\n", sessions.Len())
	return nil
}
