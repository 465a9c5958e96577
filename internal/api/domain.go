package api

import (
	"xbrlgate/internal/config"
	"xbrlgate/internal/documents"
	"xbrlgate/internal/packages"
	"xbrlgate/internal/validation"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Packages   packages.System
	Documents  documents.System
	Validation validation.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(cfg *config.Config, runtime *Runtime) (*Domain, error) {
	packagesSystem := packages.New(runtime.Logger)
	documentsSystem := documents.New(runtime.Logger)

	validationSystem, err := validation.New(validation.Options{
		Endpoints:     cfg.Engine.Endpoints,
		ProbeTimeout:  cfg.Engine.ProbeTimeoutDuration(),
		SubmitTimeout: cfg.Engine.SubmitTimeoutDuration(),
		JobCacheSize:  cfg.Engine.JobCacheSize,
	}, packagesSystem, runtime.Logger)
	if err != nil {
		return nil, err
	}

	return &Domain{
		Packages:   packagesSystem,
		Documents:  documentsSystem,
		Validation: validationSystem,
	}, nil
}
