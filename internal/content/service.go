// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package content

import (
	"annecy/internal/locale"
	"annecy/internal/registry"
)

const (
	// Caps of the aggregated lists.
	featuredLimit = 4
	recentLimit   = 6
	popularLimit  = 5
	siblingLimit  = 4
	relatedLimit  = 4

	// translationBatchSize is the number of translation ids resolved per
	// Source call; translationBatches bounds how many run concurrently.
	translationBatchSize = 50
	translationBatches   = 4
)

// Service answers every read of the content layer. It holds no state
// besides its collaborators, so one Service is shared by all requests.
type Service struct {
	src      Source
	locales  locale.Locales
	registry *registry.Registry
}

// New returns a Service reading from src. A nil reg selects the default
// registry.
func New(src Source, locales locale.Locales, reg *registry.Registry) *Service {
	if reg == nil {
		reg = registry.Default()
	}
	return &Service{src: src, locales: locales, registry: reg}
}

// Locales returns the locale configuration the service normalizes with.
func (s *Service) Locales() locale.Locales {
	return s.locales
}

// Registry returns the entity registry.
func (s *Service) Registry() *registry.Registry {
	return s.registry
}
