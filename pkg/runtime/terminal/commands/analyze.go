package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/de-tools/tda-copilot/pkg/models/domain"
	"github.com/de-tools/tda-copilot/pkg/services/assessment"
	"github.com/de-tools/tda-copilot/pkg/services/config"
	"github.com/de-tools/tda-copilot/pkg/services/document"
	"github.com/de-tools/tda-copilot/pkg/services/export"
	"github.com/de-tools/tda-copilot/pkg/services/report"
	"github.com/de-tools/tda-copilot/pkg/services/scoring"
	"github.com/de-tools/tda-copilot/pkg/services/session"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const stdinFile = "-"

type AnalyzeCmd struct {
	env *Env

	file         string
	title        string
	project      string
	submittedBy  string
	organization string
	date         string

	profile      string
	profilesPath string

	out    string
	save   bool
	copy   bool
	format string
	delay  time.Duration
	seed   uint64
}

func NewAnalyzeCmd(env *Env) *cobra.Command {
	ac := &AnalyzeCmd{env: env}
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Assess a design document against the TDA frameworks",
		RunE:  ac.run,
	}

	cmd.Flags().StringVarP(&ac.file, "file", "f", "", "Path to the design document, - for stdin")
	cmd.Flags().StringVar(&ac.title, "title", "", "Document title")
	cmd.Flags().StringVar(&ac.project, "project", "", "Project name")
	cmd.Flags().StringVar(&ac.submittedBy, "submitted-by", "", "Name of the submitter")
	cmd.Flags().StringVar(&ac.organization, "organization", "", "Organization")
	cmd.Flags().StringVar(&ac.date, "date", "", "Assessment date (YYYY-MM-DD), defaults to today")

	cmd.Flags().StringVar(&ac.profile, "profile", "", "Metadata profile to apply")
	cmd.Flags().StringVar(&ac.profilesPath, "profiles", "", "Path to the profiles file")

	cmd.Flags().StringVarP(&ac.out, "out", "o", "", "Directory to export the JSON report to")
	cmd.Flags().BoolVar(&ac.save, "save", false, "Export the JSON report to the configured export directory")
	cmd.Flags().BoolVar(&ac.copy, "copy", false, "Copy the JSON report to the clipboard")
	cmd.Flags().StringVar(&ac.format, "format", "text", "Output format (text, table, json)")
	cmd.Flags().DurationVar(&ac.delay, "delay", session.DefaultDelay, "Simulated processing time")
	cmd.Flags().Uint64Var(&ac.seed, "seed", 0, "Seed for reproducible scores, 0 for random")

	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func (ac *AnalyzeCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	logger := zerolog.Ctx(ctx)
	cfg := ac.env.Config

	reporter, ok := ac.env.Reporters[ac.format]
	if !ok {
		return fmt.Errorf("unsupported format %q. Supported formats: %s", ac.format, ac.formats())
	}

	content, err := ac.readDocument(cmd.InOrStdin(), cfg.Server.MaxUploadBytes)
	if err != nil {
		return err
	}
	md, err := ac.metadata(ctx)
	if err != nil {
		return err
	}

	delay, seed := cfg.Analysis.Delay, cfg.Analysis.Seed
	if cmd.Flags().Changed("delay") {
		delay = ac.delay
	}
	if cmd.Flags().Changed("seed") {
		seed = ac.seed
	}

	manager := session.NewManager(
		ctx,
		assessment.NewAnalyzer(scoring.FromSeed(seed)),
		report.NewBuilder(report.WithClock(ac.env.Now)),
		session.Options{Delay: delay, Now: ac.env.Now},
	)
	defer manager.Close()

	if err := manager.SetUpload(ctx, content, md); err != nil {
		return err
	}
	runner, err := manager.Analyze(ctx)
	if err != nil {
		return err
	}

	ac.env.Progress.Start(ctx, "Analyzing document against TDA frameworks")
	<-runner.Done()
	if err := ctx.Err(); err != nil {
		ac.env.Progress.Stop(err)
		return err
	}
	rep, err := manager.Report(ctx)
	ac.env.Progress.Stop(err)
	if err != nil {
		return err
	}

	if err := reporter.Handle(rep); err != nil {
		return err
	}

	sinks := ac.sinks(cfg)
	if len(sinks) == 0 {
		return nil
	}
	if err := export.Export(ctx, rep, sinks...); err != nil {
		return err
	}
	logger.Info().
		Str("assessment_id", rep.Metadata.AssessmentID).
		Str("filename", export.Filename(rep.Metadata.ProjectName)).
		Msg("report exported")
	return nil
}

func (ac *AnalyzeCmd) readDocument(stdin io.Reader, limit int64) (string, error) {
	if ac.file == stdinFile {
		return document.Read(stdin, limit)
	}

	f, err := os.Open(ac.file)
	if err != nil {
		return "", fmt.Errorf("failed to open document: %w", err)
	}
	defer f.Close()

	return document.Read(f, limit)
}

// metadata resolves the report metadata. Flags win over the profile, which
// wins over what the file name suggests.
func (ac *AnalyzeCmd) metadata(ctx context.Context) (domain.ReportMetadata, error) {
	md := domain.NewReportMetadata(ac.env.Now())
	if ac.file != stdinFile {
		md = document.MetadataFromFilename(md, ac.file)
	}

	profile := ac.profile
	if profile == "" {
		profile = ac.env.Config.Profiles.Default
	}
	if profile != "" {
		path := ac.profilesPath
		if path == "" {
			path = ac.env.Config.Profiles.Path
		}
		registry, err := config.NewRegistry(path)
		if err != nil {
			return domain.ReportMetadata{}, err
		}
		preset, err := registry.GetMetadata(ctx, profile)
		if err != nil {
			return domain.ReportMetadata{}, err
		}
		md = config.MergeMetadata(preset, md)
	}

	flags := domain.ReportMetadata{
		DocumentTitle:  ac.title,
		ProjectName:    ac.project,
		SubmittedBy:    ac.submittedBy,
		Organization:   ac.organization,
		AssessmentDate: ac.date,
	}
	md = config.MergeMetadata(flags, md)
	return md, md.Validate()
}

func (ac *AnalyzeCmd) sinks(cfg *config.Config) []export.Sink {
	var sinks []export.Sink
	switch {
	case ac.out != "":
		sinks = append(sinks, export.NewFileSink(ac.out))
	case ac.save:
		sinks = append(sinks, export.NewFileSink(cfg.Export.Dir))
	}
	if ac.copy {
		sinks = append(sinks, export.NewClipboardSink())
	}
	return sinks
}

func (ac *AnalyzeCmd) formats() string {
	names := make([]string, 0, len(ac.env.Reporters))
	for name := range ac.env.Reporters {
		names = append(names, name)
	}
	slices.Sort(names)
	return strings.Join(names, ", ")
}
