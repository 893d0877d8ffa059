package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	pwferrors "github.com/chazuruo/progressive-workflow/internal/errors"
	"github.com/chazuruo/progressive-workflow/internal/logger"
)

// FileSystemStore implements the Store interface using the filesystem.
// It keeps no state besides the base directory; every call reads the disk.
type FileSystemStore struct {
	baseDir string
}

// New creates a new FileSystemStore rooted at baseDir.
func New(baseDir string) *FileSystemStore {
	return &FileSystemStore{baseDir: baseDir}
}

// BaseDir returns the workflows base directory.
func (s *FileSystemStore) BaseDir() string {
	return s.baseDir
}

func (s *FileSystemStore) ref(id string) WorkflowRef {
	dir := filepath.Join(s.baseDir, id)
	return WorkflowRef{
		ID:   id,
		Dir:  dir,
		Path: filepath.Join(dir, DefinitionFile),
	}
}

// ReadDefinition returns the raw workflow.yaml of workflow id.
func (s *FileSystemStore) ReadDefinition(ctx context.Context, id string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ref := s.ref(id)
	logger.L().Debug("reading workflow definition", "path", ref.Path)

	data, err := os.ReadFile(ref.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &pwferrors.WorkflowError{Op: "load", ID: id, Err: pwferrors.ErrWorkflowNotFound}
		}
		return nil, &pwferrors.WorkflowError{
			Op:  "load",
			ID:  id,
			Err: fmt.Errorf("%w: %v", pwferrors.ErrWorkflowParse, err),
		}
	}
	return data, nil
}

// ReadPrompt returns a prompt file of workflow id.
func (s *FileSystemStore) ReadPrompt(ctx context.Context, id, rel string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := filepath.Join(s.baseDir, id, rel)
	logger.L().Debug("reading prompt", "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &pwferrors.WorkflowError{
				Op:  "prompt",
				ID:  id,
				Err: fmt.Errorf("%w: %s", pwferrors.ErrPromptNotFound, path),
			}
		}
		return nil, &pwferrors.WorkflowError{
			Op:  "prompt",
			ID:  id,
			Err: fmt.Errorf("%w: %v", pwferrors.ErrIO, err),
		}
	}
	return data, nil
}

// List returns the workflow directories under the base directory, skipping
// plain files and directories without a workflow.yaml. A missing base
// directory is reported as a *errors.DirectoryError wrapping
// ErrCatalogDirMissing.
func (s *FileSystemStore) List(ctx context.Context) ([]WorkflowRef, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &pwferrors.DirectoryError{Dir: s.baseDir, Err: pwferrors.ErrCatalogDirMissing}
		}
		return nil, pwferrors.Wrap(err, "list workflows")
	}

	refs := []WorkflowRef{}
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !entry.IsDir() {
			continue
		}

		ref := s.ref(entry.Name())
		if _, err := os.Stat(ref.Path); err != nil {
			continue
		}
		refs = append(refs, ref)
	}

	return refs, nil
}

// Create writes a new workflow directory. It refuses to touch an existing one.
func (s *FileSystemStore) Create(ctx context.Context, id string, files map[string][]byte) (WorkflowRef, error) {
	if err := ctx.Err(); err != nil {
		return WorkflowRef{}, err
	}

	ref := s.ref(id)
	if _, err := os.Stat(ref.Dir); err == nil {
		return WorkflowRef{}, &pwferrors.WorkflowError{Op: "create", ID: id, Err: pwferrors.ErrAlreadyExists}
	}

	// Write in a stable order so partial failures are reproducible.
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		path := filepath.Join(ref.Dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return WorkflowRef{}, fmt.Errorf("failed to create directory: %w", err)
		}
		if err := os.WriteFile(path, files[name], 0644); err != nil {
			return WorkflowRef{}, fmt.Errorf("failed to write %s: %w", name, err)
		}
	}

	return ref, nil
}
