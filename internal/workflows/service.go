package workflows

import (
	"context"
	"errors"
	"fmt"

	pwferrors "github.com/chazuruo/progressive-workflow/internal/errors"
	"github.com/chazuruo/progressive-workflow/internal/logger"
	"github.com/chazuruo/progressive-workflow/internal/placeholders"
	"github.com/chazuruo/progressive-workflow/internal/workflows/store"
	"github.com/chazuruo/progressive-workflow/internal/yamlite"
)

// Service answers step, args and catalog requests against a Store.
type Service struct {
	store  store.Store
	strict bool
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithStrictPlaceholders makes Step fail when a prompt references a variable
// that was not supplied.
func WithStrictPlaceholders() ServiceOption {
	return func(s *Service) { s.strict = true }
}

// NewService creates a Service backed by s.
func NewService(s store.Store, opts ...ServiceOption) *Service {
	svc := &Service{store: s}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// Step returns step index of workflow id with vars substituted into its
// prompt. Only that step's prompt file is read.
func (s *Service) Step(ctx context.Context, id string, index int, vars map[string]string) (*PromptResult, error) {
	data, err := s.store.ReadDefinition(ctx, id)
	if err != nil {
		return nil, err
	}

	steps := yamlite.Parse(string(data)).List("steps")
	total := len(steps)
	if total == 0 {
		return nil, &pwferrors.WorkflowError{Op: "step", ID: id, Err: pwferrors.ErrNoSteps}
	}
	if index < 0 || index >= total {
		return nil, &pwferrors.WorkflowError{Op: "step", ID: id, Err: &pwferrors.StepRangeError{Index: index, Total: total}}
	}

	item := steps[index]
	rel, _ := item.String("prompt")
	if rel == "" {
		return nil, &pwferrors.WorkflowError{
			Op:  "step",
			ID:  id,
			Err: fmt.Errorf("%w: step %d has no prompt", pwferrors.ErrInvalid, index),
		}
	}

	content, err := s.store.ReadPrompt(ctx, id, rel)
	if err != nil {
		return nil, err
	}

	var prompt string
	if s.strict {
		prompt, err = placeholders.SubstituteStrict(string(content), vars)
		if err != nil {
			return nil, &pwferrors.WorkflowError{Op: "step", ID: id, Err: err}
		}
	} else {
		prompt = placeholders.Substitute(string(content), vars)
	}

	name, _ := item.String("name")
	logger.L().Debug("resolved step", "workflow", id, "index", index, "total", total)

	return &PromptResult{
		StepIndex:  index,
		StepName:   stepName(name, index),
		Prompt:     prompt,
		TotalSteps: total,
		IsLast:     index == total-1,
	}, nil
}

// Args returns the argument declarations of workflow id. Only the args
// section is read; the result is never nil.
func (s *Service) Args(ctx context.Context, id string) ([]Arg, error) {
	data, err := s.store.ReadDefinition(ctx, id)
	if err != nil {
		return nil, err
	}
	return toArgs(yamlite.ParseArgs(string(data))), nil
}

// CatalogOptions controls Catalog.
type CatalogOptions struct {
	// RequireDir turns a missing base directory into an error instead of an
	// empty catalog.
	RequireDir bool
}

// Catalog lists every workflow under the base directory. A workflow that
// cannot be read is logged and skipped.
func (s *Service) Catalog(ctx context.Context, opts CatalogOptions) ([]CatalogEntry, error) {
	refs, err := s.store.List(ctx)
	if err != nil {
		if !opts.RequireDir && errors.Is(err, pwferrors.ErrCatalogDirMissing) {
			return []CatalogEntry{}, nil
		}
		return nil, err
	}

	entries := make([]CatalogEntry, 0, len(refs))
	for _, ref := range refs {
		data, err := s.store.ReadDefinition(ctx, ref.ID)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			logger.L().Warn("skipping workflow", "id", ref.ID, "err", err)
			continue
		}

		scalars := yamlite.ParseScalars(string(data))
		entry := CatalogEntry{ID: ref.ID, Name: ref.ID, Description: scalars["description"]}
		if name := scalars["name"]; name != "" {
			entry.Name = name
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// Definition returns the fully decoded workflow id.
func (s *Service) Definition(ctx context.Context, id string) (*Definition, error) {
	data, err := s.store.ReadDefinition(ctx, id)
	if err != nil {
		return nil, err
	}
	return UnmarshalDefinition(id, data), nil
}

// Document returns the parsed workflow.yaml of id, keeping key order and
// every list field.
func (s *Service) Document(ctx context.Context, id string) (*yamlite.Document, error) {
	data, err := s.store.ReadDefinition(ctx, id)
	if err != nil {
		return nil, err
	}
	return yamlite.Parse(string(data)), nil
}
