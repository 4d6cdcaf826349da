// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package database

import (
	"cmp"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"annecy/internal/registry"
	"annecy/internal/slug"
)

// tr is one localized row of seed data. Unused columns stay empty; an empty
// slug is derived from the name.
type tr struct {
	lang, name, slug, text, body string
}

func (t tr) seoSlug() string {
	if t.slug != "" {
		return t.slug
	}
	return slug.Generate(t.name)
}

type seedTx struct {
	ctx context.Context
	tx  *sql.Tx
}

// Seed populates an empty database with the two site entities, their
// child categories, authors, sample articles, comments and places. It is
// a no-op when any category exists.
func Seed(ctx context.Context, db *sql.DB) error {
	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM categories").Scan(&count); err != nil {
		return fmt.Errorf("seed check categories: %w", err)
	}
	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed begin tx: %w", err)
	}
	defer tx.Rollback()

	s := seedTx{ctx: ctx, tx: tx}
	if err := s.run(); err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed commit: %w", err)
	}

	slog.Info("database seeded", "categories", 7, "authors", 3, "articles", 4, "places", 3)
	return nil
}

func (s seedTx) run() error {
	mag, heb := registry.MagazineRootID, registry.HebergementsRootID

	if err := s.category(mag, nil, "magazine", "openmoji:newspaper", 1,
		tr{"fr", "Magazine", "", "Découvrez les dernières actualités, bons plans et histoires d'Annecy et de sa région.", ""},
		tr{"en", "Magazine", "", "Discover the latest news, deals and stories from Annecy and its region.", ""},
		tr{"es", "Revista", "", "Descubre las últimas noticias, ofertas e historias de Annecy y su región.", ""},
	); err != nil {
		return err
	}
	if err := s.category(heb, nil, "hebergements", "openmoji:bed", 2,
		tr{"fr", "Hébergements", "", "Trouvez le logement idéal pour votre séjour à Annecy.", ""},
		tr{"en", "Accommodations", "", "Find the perfect place to stay in Annecy.", ""},
		tr{"es", "Alojamientos", "", "Encuentra el alojamiento perfecto para tu estancia en Annecy.", ""},
	); err != nil {
		return err
	}

	actualites, culture, bonPlans := uuid.New(), uuid.New(), uuid.New()
	hotels, chambres := uuid.New(), uuid.New()
	children := []struct {
		id     uuid.UUID
		parent uuid.UUID
		slug   string
		icon   string
		order  int
		trs    []tr
	}{
		{actualites, mag, "actualites", "openmoji:newspaper", 1, []tr{
			{"fr", "Actualités", "", "Les dernières nouvelles d'Annecy et de sa région.", ""},
			{"en", "News", "", "Latest news from Annecy and its region.", ""},
			{"es", "Noticias", "", "Las últimas noticias de Annecy y su región.", ""},
		}},
		{culture, mag, "culture", "openmoji:artist-palette", 2, []tr{
			{"fr", "Culture", "", "Événements culturels, expositions et spectacles à Annecy.", ""},
			{"en", "Culture", "", "Cultural events, exhibitions and shows in Annecy.", ""},
			{"es", "Cultura", "", "Eventos culturales, exposiciones y espectáculos en Annecy.", ""},
		}},
		{bonPlans, mag, "bon-plans", "openmoji:money-bag", 3, []tr{
			{"fr", "Bon Plans", "", "Les meilleures offres et astuces pour profiter d'Annecy.", ""},
			{"en", "Deals", "", "Best offers and tips to enjoy Annecy.", ""},
			{"es", "Ofertas", "", "Las mejores ofertas y consejos para disfrutar de Annecy.", ""},
		}},
		{hotels, heb, "hotels", "openmoji:hotel", 1, []tr{
			{"fr", "Hôtels", "", "Hôtels à Annecy pour tous les budgets.", ""},
			{"en", "Hotels", "", "Hotels in Annecy for all budgets.", ""},
		}},
		{chambres, heb, "chambres-hotes", "openmoji:house", 2, []tr{
			{"fr", "Chambres d'hôtes", "chambres-hotes", "Séjournez chez l'habitant pour une expérience authentique.", ""},
			{"en", "Bed & Breakfast", "", "Stay with locals for an authentic experience.", ""},
		}},
	}
	for _, c := range children {
		if err := s.category(c.id, &c.parent, c.slug, c.icon, c.order, c.trs...); err != nil {
			return err
		}
	}

	marie, err := s.author("Marie Dubois", "https://i.pravatar.cc/300?img=1",
		map[string]string{"twitter": "https://twitter.com/mariedubois", "linkedin": "https://linkedin.com/in/mariedubois"},
		tr{lang: "fr", text: "Journaliste passionnée par Annecy depuis 10 ans."},
		tr{lang: "en", text: "Journalist passionate about Annecy for 10 years."},
		tr{lang: "es", text: "Periodista apasionada por Annecy desde hace 10 años."},
	)
	if err != nil {
		return err
	}
	pierre, err := s.author("Pierre Martin", "https://i.pravatar.cc/300?img=12",
		map[string]string{"instagram": "https://instagram.com/pierremartin"},
		tr{lang: "fr", text: "Photographe et blogueur voyage."},
		tr{lang: "en", text: "Photographer and travel blogger."},
	)
	if err != nil {
		return err
	}
	sophie, err := s.author("Sophie Bernard", "https://i.pravatar.cc/300?img=5",
		map[string]string{"linkedin": "https://linkedin.com/in/sophiebernard"},
		tr{lang: "fr", text: "Experte en tourisme et hébergement."},
		tr{lang: "en", text: "Tourism and accommodation expert."},
	)
	if err != nil {
		return err
	}

	festival, err := s.article(actualites, marie, "2024-01-15", 5, 1250, true,
		tr{"fr", "Le Festival du Film d'Animation revient en juin", "festival-animation-juin", "Le festival annécien annonce son programme.", "## Programme\n\nAvant-premières mondiales au bord du lac."},
		tr{"en", "Animation Film Festival Returns in June", "animation-festival-june", "The Annecy festival announces its program.", "## Program\n\nWorld premieres by the lake."},
		tr{"es", "El Festival de Cine de Animación regresa en junio", "festival-animacion-junio", "El festival de Annecy anuncia su programa.", "## Programa\n\nEstrenos mundiales junto al lago."},
	)
	if err != nil {
		return err
	}
	secrets, err := s.article(culture, pierre, "2024-01-20", 8, 890, true,
		tr{"fr", "5 lieux secrets autour du lac d'Annecy", "lieux-secrets-lac", "Les endroits méconnus du lac.", "Loin des sentiers battus, **cinq** adresses à découvrir."},
		tr{"en", "5 Secret Spots Around Lake Annecy", "secret-spots-lake", "Hidden gems of the lake.", "Off the beaten path, **five** places to discover."},
	)
	if err != nil {
		return err
	}
	cheap, err := s.article(bonPlans, sophie, "2024-02-01", 6, 1580, false,
		tr{"fr", "Où manger pour moins de 15€ à Annecy", "manger-moins-15-euros", "Notre sélection de restaurants abordables.", "- Le Bouillon\n- La Cuisine des Amis"},
		tr{"en", "Where to Eat for Less Than 15€ in Annecy", "eat-under-15-euros", "Our selection of affordable restaurants.", "- Le Bouillon\n- La Cuisine des Amis"},
	)
	if err != nil {
		return err
	}
	bike, err := s.article(actualites, marie, "2024-02-10", 4, 520, false,
		tr{"fr", "Nouvelle piste cyclable inaugurée autour du lac", "piste-cyclable-lac", "Une piste de 10 km vient d'être inaugurée.", "Le tour du lac à vélo devient plus simple."},
		tr{"en", "New Bike Path Opened Around the Lake", "bike-path-lake", "A 10 km bike path has just opened.", "Cycling around the lake gets easier."},
	)
	if err != nil {
		return err
	}
	if err := s.related(festival, bike); err != nil {
		return err
	}
	if err := s.related(bike, festival); err != nil {
		return err
	}

	jean, err := s.comment(festival, nil, "Jean Dupont", "jean.dupont@example.com", "Très intéressant ! J'ai hâte de découvrir cette édition du festival.", 0)
	if err != nil {
		return err
	}
	if _, err := s.comment(festival, &jean, "Marie Dubois", "marie.dubois@example.com", "Merci Jean ! Le programme sera exceptionnel cette année.", time.Hour); err != nil {
		return err
	}
	if _, err := s.comment(secrets, nil, "Sophie Laurent", "sophie.laurent@example.com", "Merci pour ces bonnes adresses ! La cascade d'Angon est magnifique.", 0); err != nil {
		return err
	}
	if _, err := s.comment(cheap, nil, "Thomas Bernard", "thomas.bernard@example.com", "Le Bouillon est excellent, je recommande vivement !", 0); err != nil {
		return err
	}

	places := []struct {
		category  uuid.UUID
		image     string
		featured  bool
		price     string
		capacity  int
		amenities any
		trs       []tr
	}{
		{hotels, "https://images.unsplash.com/photo-1566073771259-6a8506099945?w=800", true, "180", 2,
			[]string{"wifi", "parking", "spa", "piscine", "restaurant", "climatisation", "vue_lac"}, []tr{
				{"fr", "Hôtel Lac & Spa", "", "Hôtel 4 étoiles avec vue panoramique sur le lac d'Annecy.", ""},
				{"en", "Lake & Spa Hotel", "", "4-star hotel with panoramic views of Lake Annecy.", ""},
				{"es", "Hotel Lago & Spa", "", "Hotel de 4 estrellas con vistas panorámicas al lago de Annecy.", ""},
			}},
		{hotels, "https://images.unsplash.com/photo-1582719478250-c89cae4dc85b?w=800", false, "95", 2,
			"wifi, petit_dejeuner, centre_ville", []tr{
				{"fr", "Hôtel du Centre", "", "Hôtel confortable en plein cœur de la vieille ville.", ""},
				{"en", "Downtown Hotel", "", "Comfortable hotel in the heart of the old town.", ""},
				{"es", "Hotel Centro", "", "Hotel cómodo en el corazón del casco antiguo.", ""},
			}},
		{chambres, "https://images.unsplash.com/photo-1587985064135-0366536eac41?w=800", true, "120", 4,
			[]map[string]string{{"label": "wifi"}, {"label": "parking"}, {"label": "petit_dejeuner"}, {"label": "jardin"}}, []tr{
				{"fr", "La Maison des Alpes", "maison-des-alpes", "Chambre d'hôtes dans un chalet savoyard authentique.", ""},
				{"en", "Alpine House", "", "Bed & breakfast in an authentic Savoyard chalet.", ""},
				{"es", "Casa Alpina", "", "Casa de huéspedes en un auténtico chalet saboyano.", ""},
			}},
	}
	for _, p := range places {
		if err := s.place(p.category, p.image, p.featured, p.price, p.capacity, p.amenities, p.trs...); err != nil {
			return err
		}
	}
	return nil
}

func (s seedTx) category(id uuid.UUID, parent *uuid.UUID, key, icon string, order int, trs ...tr) error {
	if _, err := s.tx.ExecContext(s.ctx, `
		INSERT INTO categories (id, slug, parent_id, display_order, is_active, icon_name)
		VALUES ($1, $2, $3, $4, TRUE, $5)
	`, id, key, parent, order, icon); err != nil {
		return fmt.Errorf("insert category %s: %w", key, err)
	}
	for _, t := range trs {
		if _, err := s.tx.ExecContext(s.ctx, `
			INSERT INTO category_translations (category_id, lang_code, name, seo_slug, description)
			VALUES ($1, $2, $3, $4, $5)
		`, id, t.lang, t.name, t.seoSlug(), t.text); err != nil {
			return fmt.Errorf("insert category translation %s/%s: %w", key, t.lang, err)
		}
	}
	return nil
}

func (s seedTx) author(name, image string, links map[string]string, trs ...tr) (uuid.UUID, error) {
	key := slug.Generate(name)
	type link struct {
		Platform string `json:"platform"`
		URL      string `json:"url"`
	}
	var social []link
	for _, platform := range []string{"twitter", "linkedin", "instagram"} {
		if url, ok := links[platform]; ok {
			social = append(social, link{platform, url})
		}
	}
	raw, err := json.Marshal(social)
	if err != nil {
		return uuid.Nil, fmt.Errorf("encode social links: %w", err)
	}

	var id uuid.UUID
	if err := s.tx.QueryRowContext(s.ctx, `
		INSERT INTO authors (slug, name, profile_image_url, social_links)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, key, name, image, string(raw)).Scan(&id); err != nil {
		return uuid.Nil, fmt.Errorf("insert author %s: %w", key, err)
	}
	for _, t := range trs {
		if _, err := s.tx.ExecContext(s.ctx, `
			INSERT INTO author_translations (author_id, lang_code, bio, seo_slug)
			VALUES ($1, $2, $3, $4)
		`, id, t.lang, t.text, cmp.Or(t.slug, key)); err != nil {
			return uuid.Nil, fmt.Errorf("insert author translation %s/%s: %w", key, t.lang, err)
		}
	}
	return id, nil
}

func (s seedTx) article(category, author uuid.UUID, published string, readTime, views int, featured bool, trs ...tr) (uuid.UUID, error) {
	date, err := time.Parse("2006-01-02", published)
	if err != nil {
		return uuid.Nil, err
	}

	var id uuid.UUID
	if err := s.tx.QueryRowContext(s.ctx, `
		INSERT INTO articles (category_id, author_id, publication_date, read_time_minutes,
		                      view_count, is_featured, status)
		VALUES ($1, $2, $3, $4, $5, $6, 'published')
		RETURNING id
	`, category, author, date, readTime, views, featured).Scan(&id); err != nil {
		return uuid.Nil, fmt.Errorf("insert article: %w", err)
	}
	for _, t := range trs {
		if _, err := s.tx.ExecContext(s.ctx, `
			INSERT INTO article_translations (article_id, lang_code, name, seo_slug, description, content)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, id, t.lang, t.name, t.seoSlug(), t.text, t.body); err != nil {
			return uuid.Nil, fmt.Errorf("insert article translation %s: %w", t.seoSlug(), err)
		}
	}
	return id, nil
}

func (s seedTx) related(from, to uuid.UUID) error {
	if _, err := s.tx.ExecContext(s.ctx, `
		INSERT INTO article_related_articles (article_id, related_article_id) VALUES ($1, $2)
	`, from, to); err != nil {
		return fmt.Errorf("insert related article: %w", err)
	}
	return nil
}

func (s seedTx) comment(article uuid.UUID, parent *uuid.UUID, name, email, text string, after time.Duration) (uuid.UUID, error) {
	var id uuid.UUID
	if err := s.tx.QueryRowContext(s.ctx, `
		INSERT INTO comments (article_id, parent_comment_id, author_name, author_email, content, status, created_at)
		VALUES ($1, $2, $3, $4, $5, 'approved', NOW() + $6::interval)
		RETURNING id
	`, article, parent, name, email, text, fmt.Sprintf("%d seconds", int(after.Seconds()))).Scan(&id); err != nil {
		return uuid.Nil, fmt.Errorf("insert comment: %w", err)
	}
	return id, nil
}

func (s seedTx) place(category uuid.UUID, image string, featured bool, price string, capacity int, amenities any, trs ...tr) error {
	raw, err := json.Marshal(amenities)
	if err != nil {
		return fmt.Errorf("encode amenities: %w", err)
	}

	var id uuid.UUID
	if err := s.tx.QueryRowContext(s.ctx, `
		INSERT INTO places (category_id, main_image_url, is_featured, status)
		VALUES ($1, $2, $3, 'published')
		RETURNING id
	`, category, image, featured).Scan(&id); err != nil {
		return fmt.Errorf("insert place: %w", err)
	}
	for _, t := range trs {
		if _, err := s.tx.ExecContext(s.ctx, `
			INSERT INTO place_translations (place_id, lang_code, name, seo_slug, description)
			VALUES ($1, $2, $3, $4, $5)
		`, id, t.lang, t.name, t.seoSlug(), t.text); err != nil {
			return fmt.Errorf("insert place translation %s: %w", t.seoSlug(), err)
		}
	}
	if _, err := s.tx.ExecContext(s.ctx, `
		INSERT INTO details_accommodation (place_id, price_per_night, capacity, amenities, check_in_time, check_out_time)
		VALUES ($1, $2::numeric, $3, $4, '15:00', '11:00')
	`, id, price, capacity, string(raw)); err != nil {
		return fmt.Errorf("insert place details: %w", err)
	}
	return nil
}
