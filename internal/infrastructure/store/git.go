package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/alexisbeaulieu97/customizer/internal/ports"
)

const gitSettingsFile = "customization.json"

// GitPersister keeps the settings file in a git worktree and commits every
// save that changes it, giving a browsable history of customizations.
type GitPersister struct {
	dir    string
	file   *FilePersister
	author object.Signature
	now    func() time.Time
}

// GitOptions configures a GitPersister.
type GitOptions struct {
	Dir         string
	AuthorName  string
	AuthorEmail string
}

// Revision summarises one commit of the settings file.
type Revision struct {
	Hash    string
	Message string
	When    time.Time
}

// NewGitPersister creates a persister rooted at opts.Dir. The repository is
// initialised on first save when it does not exist yet.
func NewGitPersister(opts GitOptions) *GitPersister {
	name := opts.AuthorName
	if name == "" {
		name = "customizer"
	}
	email := opts.AuthorEmail
	if email == "" {
		email = "customizer@localhost"
	}
	return &GitPersister{
		dir:    opts.Dir,
		file:   NewFilePersister(filepath.Join(opts.Dir, gitSettingsFile)),
		author: object.Signature{Name: name, Email: email},
		now:    time.Now,
	}
}

// Name implements ports.Persister.
func (g *GitPersister) Name() string { return "git" }

// Load implements ports.Persister by reading the worktree copy.
func (g *GitPersister) Load(ctx context.Context) (ports.Snapshot, error) {
	return g.file.Load(ctx)
}

// Save implements ports.Persister. Saving identical settings creates no commit.
func (g *GitPersister) Save(ctx context.Context, snapshot ports.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	repo, err := g.open(true)
	if err != nil {
		return err
	}

	if err := g.file.write(settingsFile{
		Version:    fileFormatVersion,
		ColorTheme: snapshot.ColorTheme,
		Settings:   snapshot.Settings,
	}); err != nil {
		return err
	}

	wt, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("open worktree: %w", err)
	}
	if _, err := wt.Add(gitSettingsFile); err != nil {
		return fmt.Errorf("stage %s: %w", gitSettingsFile, err)
	}
	status, err := wt.Status()
	if err != nil {
		return fmt.Errorf("worktree status: %w", err)
	}
	if status.IsClean() {
		return nil
	}

	author := g.author
	author.When = g.now()
	message := fmt.Sprintf("customization: save %s theme", snapshot.ColorTheme)
	if _, err := wt.Commit(message, &git.CommitOptions{Author: &author}); err != nil {
		return fmt.Errorf("commit settings: %w", err)
	}
	return nil
}

// History lists commits touching the settings file, newest first. limit <= 0
// returns every commit.
func (g *GitPersister) History(ctx context.Context, limit int) ([]Revision, error) {
	repo, err := g.open(false)
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, nil
		}
		return nil, err
	}
	fileName := gitSettingsFile
	iter, err := repo.Log(&git.LogOptions{FileName: &fileName})
	if err != nil {
		return nil, fmt.Errorf("read history: %w", err)
	}
	defer iter.Close()

	var revisions []Revision
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		commit, err := iter.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read history: %w", err)
		}
		revisions = append(revisions, Revision{
			Hash:    commit.Hash.String(),
			Message: commit.Message,
			When:    commit.Author.When,
		})
		if limit > 0 && len(revisions) >= limit {
			break
		}
	}
	return revisions, nil
}

func (g *GitPersister) open(create bool) (*git.Repository, error) {
	repo, err := git.PlainOpen(g.dir)
	if err == nil {
		return repo, nil
	}
	if !errors.Is(err, git.ErrRepositoryNotExists) || !create {
		return nil, err
	}
	repo, err = git.PlainInit(g.dir, false)
	if err != nil {
		return nil, fmt.Errorf("init settings repository: %w", err)
	}
	return repo, nil
}
