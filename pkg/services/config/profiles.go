package config

import (
	"context"
	"fmt"

	"github.com/de-tools/tda-copilot/pkg/models/domain"
	"gopkg.in/ini.v1"
)

// Registry exposes the metadata presets stored in a profile file such as
// ~/.tdacfg:
//
//	[payments]
//	project_name  = Payments Platform
//	submitted_by  = J. Doe
//	organization  = Retail IT
type Registry interface {
	GetProfiles(ctx context.Context) ([]string, error)
	GetMetadata(ctx context.Context, profile string) (domain.ReportMetadata, error)
}

type cfgRegistry struct {
	cfg *ini.File
}

func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load profiles from %s: %w", path, err)
	}
	return &cfgRegistry{cfg: cfg}, nil
}

func (cr *cfgRegistry) GetProfiles(_ context.Context) ([]string, error) {
	var profiles []string
	for _, section := range cr.cfg.Sections() {
		if len(section.Keys()) > 0 {
			profiles = append(profiles, section.Name())
		}
	}
	return profiles, nil
}

func (cr *cfgRegistry) GetMetadata(_ context.Context, profile string) (domain.ReportMetadata, error) {
	section, err := cr.cfg.GetSection(profile)
	if err != nil {
		return domain.ReportMetadata{}, fmt.Errorf("profile %s not found", profile)
	}

	md := domain.ReportMetadata{
		DocumentTitle:  section.Key("document_title").String(),
		ProjectName:    section.Key("project_name").String(),
		SubmittedBy:    section.Key("submitted_by").String(),
		Organization:   section.Key("organization").String(),
		AssessmentDate: section.Key("assessment_date").String(),
	}
	if err := md.Validate(); err != nil {
		return domain.ReportMetadata{}, fmt.Errorf("profile %s: %w", profile, err)
	}
	return md, nil
}

// MergeMetadata fills the empty fields of md from preset.
func MergeMetadata(md, preset domain.ReportMetadata) domain.ReportMetadata {
	pick := func(v, fallback string) string {
		if v == "" {
			return fallback
		}
		return v
	}
	return domain.ReportMetadata{
		DocumentTitle:  pick(md.DocumentTitle, preset.DocumentTitle),
		ProjectName:    pick(md.ProjectName, preset.ProjectName),
		SubmittedBy:    pick(md.SubmittedBy, preset.SubmittedBy),
		Organization:   pick(md.Organization, preset.Organization),
		AssessmentDate: pick(md.AssessmentDate, preset.AssessmentDate),
	}
}
