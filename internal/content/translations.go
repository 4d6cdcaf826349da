// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package content

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"annecy/internal/models"
)

// resolveArticleTranslations resolves the translation references of
// articles in fixed-size batches run concurrently. The result maps each
// article id to its translations in reference order; dangling references
// are skipped. Any failed batch fails the whole call.
func (s *Service) resolveArticleTranslations(ctx context.Context, articles []models.Article) (map[uuid.UUID][]models.ArticleTranslation, error) {
	var refs []uuid.UUID
	for i := range articles {
		refs = append(refs, articles[i].TranslationIDs...)
	}

	out := make(map[uuid.UUID][]models.ArticleTranslation, len(articles))
	if len(refs) == 0 {
		return out, nil
	}

	var batches [][]uuid.UUID
	for start := 0; start < len(refs); start += translationBatchSize {
		end := min(start+translationBatchSize, len(refs))
		batches = append(batches, refs[start:end])
	}

	results := make([][]models.ArticleTranslation, len(batches))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(translationBatches)
	for i, batch := range batches {
		g.Go(func() error {
			trs, err := s.src.ArticleTranslationsByIDs(gctx, batch)
			if err != nil {
				return err
			}
			results[i] = trs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]models.ArticleTranslation, len(refs))
	for _, trs := range results {
		for _, tr := range trs {
			byID[tr.ID] = tr
		}
	}

	for i := range articles {
		a := &articles[i]
		trs := make([]models.ArticleTranslation, 0, len(a.TranslationIDs))
		for _, id := range a.TranslationIDs {
			if tr, ok := byID[id]; ok {
				trs = append(trs, tr)
			}
		}
		out[a.ID] = trs
	}
	return out, nil
}
