package factory

import (
	"fmt"
	"strings"
	"time"

	"worksim/internal/dist"
	"worksim/internal/domain"
)

var enumOptionColors = []string{"#ff0000", "#00ff00", "#0000ff", "#ffff00", "#ff00ff", "#00ffff"}

// CustomFields materializes the configured field definitions as global
// organization fields, with enum options colored from a fixed cycle.
func (f *Factory) CustomFields(orgID string) ([]domain.CustomFieldDefinition, []domain.CustomFieldEnumOption) {
	var defs []domain.CustomFieldDefinition
	var options []domain.CustomFieldEnumOption
	for _, spec := range f.cfg.CustomFields.Fields {
		def := domain.CustomFieldDefinition{
			FieldID:        domain.NewID(),
			OrganizationID: orgID,
			Name:           spec.Name,
			FieldType:      spec.Type,
			IsGlobal:       true,
			CreatedAt:      f.cfg.StartDate(),
		}
		defs = append(defs, def)
		for i, opt := range spec.Options {
			options = append(options, domain.CustomFieldEnumOption{
				OptionID: domain.NewID(),
				FieldID:  def.FieldID,
				Name:     opt,
				Color:    enumOptionColors[i%len(enumOptionColors)],
				Position: i,
				Enabled:  true,
			})
		}
	}
	return defs, options
}

var tagColors = []string{"#ff5733", "#33ff57", "#3357ff", "#ff33a1", "#a133ff", "#33fff5"}

// Tags builds the organization's tag vocabulary from configuration.
func (f *Factory) Tags(orgID string) []domain.Tag {
	tags := make([]domain.Tag, 0, len(f.cfg.Tags))
	for i, name := range f.cfg.Tags {
		tags = append(tags, domain.Tag{
			TagID:          domain.NewID(),
			OrganizationID: orgID,
			Name:           name,
			Color:          tagColors[i%len(tagColors)],
			CreatedAt:      f.cfg.StartDate(),
		})
	}
	return tags
}

// FieldValues assigns Priority and Effort enum values to tasks at their
// configured adoption rates. Option choice is uniform. Value timestamps
// follow the task's creation.
func (f *Factory) FieldValues(tasks []domain.Task, defs []domain.CustomFieldDefinition, options []domain.CustomFieldEnumOption) []domain.CustomFieldValue {
	optionsByField := make(map[string][]domain.CustomFieldEnumOption)
	for _, o := range options {
		optionsByField[o.FieldID] = append(optionsByField[o.FieldID], o)
	}
	rateFor := func(name string) float64 {
		switch name {
		case "Priority":
			return f.cfg.CustomFields.PriorityRate
		case "Effort":
			return f.cfg.CustomFields.EffortRate
		default:
			return 0
		}
	}

	var values []domain.CustomFieldValue
	for _, t := range tasks {
		for _, def := range defs {
			rate := rateFor(def.Name)
			opts := optionsByField[def.FieldID]
			if rate == 0 || len(opts) == 0 {
				continue
			}
			if f.rng.Float64() >= rate {
				continue
			}
			opt := opts[f.rng.Intn(len(opts))]
			values = append(values, domain.CustomFieldValue{
				ValueID:      domain.NewID(),
				TaskID:       t.TaskID,
				FieldID:      def.FieldID,
				EnumOptionID: &opt.OptionID,
				CreatedAt:    t.CreatedAt,
				ModifiedAt:   t.CreatedAt,
			})
		}
	}
	return values
}

// TaskTags links a fraction of tasks to one or two distinct tags.
func (f *Factory) TaskTags(tasks []domain.Task, tags []domain.Tag) ([]domain.TaskTag, error) {
	if len(tags) == 0 {
		return nil, nil
	}
	var links []domain.TaskTag
	for _, t := range tasks {
		if f.rng.Float64() >= f.cfg.TaskTags.Rate {
			continue
		}
		n := dist.UniformInt(f.rng, f.cfg.TaskTags.PerTask.Min, f.cfg.TaskTags.PerTask.Max)
		if n > len(tags) {
			n = len(tags)
		}
		chosen, err := dist.Sample(f.rng, tags, n)
		if err != nil {
			return nil, err
		}
		for _, tag := range chosen {
			links = append(links, domain.TaskTag{
				TaskTagID: domain.NewID(),
				TaskID:    t.TaskID,
				TagID:     tag.TagID,
				CreatedAt: t.CreatedAt,
			})
		}
	}
	return links, nil
}

// Attachments gives a fraction of tasks one uploaded file with a type drawn
// uniformly from the configured MIME table. Files are 1KB to 10MB and live
// under a synthetic storage URL; the uploader is the task creator.
func (f *Factory) Attachments(tasks []domain.Task) []domain.Attachment {
	if len(f.cfg.Attachments.Types) == 0 {
		return nil
	}
	var attachments []domain.Attachment
	serial := 0
	for _, t := range tasks {
		if f.rng.Float64() >= f.cfg.Attachments.Rate {
			continue
		}
		at := f.cfg.Attachments.Types[f.rng.Intn(len(f.cfg.Attachments.Types))]
		ext := at.Extensions[f.rng.Intn(len(at.Extensions))]
		serial++
		filename := fmt.Sprintf("attachment_%04d.%s", serial, strings.TrimPrefix(ext, "."))
		attachments = append(attachments, domain.Attachment{
			AttachmentID: domain.NewID(),
			TaskID:       t.TaskID,
			UploadedBy:   t.CreatedBy,
			Filename:     filename,
			FileType:     at.MIME,
			FileSize:     int64(dist.UniformInt(f.rng, 1024, 10*1024*1024)),
			StorageURL:   "https://storage.example.com/" + filename,
			CreatedAt:    t.CreatedAt.Add(time.Duration(dist.UniformInt(f.rng, 1, 168)) * time.Hour),
		})
	}
	return attachments
}
