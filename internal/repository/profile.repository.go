package repository

//go:generate mockgen -source=profile.repository.go -destination=mocks/mock_profile.repository.go

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"emailgenie/internal/domain"

	"github.com/gocarina/gocsv"
)

// ProfileRepository stores sender profiles in a single CSV file that is
// read wholesale and rewritten wholesale on every mutation. There is no
// locking; only one writer is expected.
type ProfileRepository interface {
	// Save replaces the profile with the same name, or appends it. Line
	// endings are normalized to LF first.
	Save(profile domain.Profile) error
	// List returns an empty slice when the file is missing or has no
	// Profile Name column
	List() ([]domain.Profile, error)
	Get(name string) (*domain.Profile, error)
	Delete(name string) error
}

type profileRepositoryHandler struct {
	Path string
}

func NewProfileRepository(path string) ProfileRepository {
	return profileRepositoryHandler{Path: path}
}

func (h profileRepositoryHandler) List() ([]domain.Profile, error) {
	data, err := os.ReadFile(h.Path)
	if errors.Is(err, os.ErrNotExist) {
		return []domain.Profile{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read profiles file: %w", err)
	}

	if !hasProfileNameColumn(data) {
		return []domain.Profile{}, nil
	}

	rows := []domain.Profile{}
	err = gocsv.UnmarshalBytes(data, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to parse profiles file: %w", err)
	}

	out := []domain.Profile{}
	for _, r := range rows {
		if r.Name != "" {
			out = append(out, r)
		}
	}

	return out, nil
}

func hasProfileNameColumn(data []byte) bool {
	if len(bytes.TrimSpace(data)) == 0 {
		return false
	}
	header, err := csv.NewReader(bytes.NewReader(data)).Read()
	if err != nil {
		return false
	}
	return slices.Contains(header, domain.ProfileColumns[0])
}

func (h profileRepositoryHandler) Get(name string) (*domain.Profile, error) {
	profiles, err := h.List()
	if err != nil {
		return nil, err
	}
	for _, p := range profiles {
		if p.Name == name {
			return &p, nil
		}
	}
	return nil, nil
}

func (h profileRepositoryHandler) Save(profile domain.Profile) error {
	profile = profile.Normalize()

	profiles, err := h.List()
	if err != nil {
		return err
	}

	replaced := false
	for i, p := range profiles {
		if p.Name == profile.Name {
			profiles[i] = profile
			replaced = true
		}
	}
	if !replaced {
		profiles = append(profiles, profile)
	}

	return h.write(profiles)
}

func (h profileRepositoryHandler) Delete(name string) error {
	profiles, err := h.List()
	if err != nil {
		return err
	}

	out := []domain.Profile{}
	for _, p := range profiles {
		if p.Name != name {
			out = append(out, p)
		}
	}

	return h.write(out)
}

func (h profileRepositoryHandler) write(profiles []domain.Profile) error {
	if err := os.MkdirAll(filepath.Dir(h.Path), 0o755); err != nil {
		return fmt.Errorf("failed to create profiles directory: %w", err)
	}

	f, err := os.Create(h.Path)
	if err != nil {
		return fmt.Errorf("failed to open profiles file: %w", err)
	}
	defer f.Close()

	err = gocsv.MarshalFile(&profiles, f)
	if err != nil {
		return fmt.Errorf("failed to write profiles file: %w", err)
	}

	return nil
}
