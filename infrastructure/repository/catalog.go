package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/searchad-collector/infrastructure/database/postgres"
	"github.com/vfg2006/searchad-collector/internal/domain"
)

// CatalogRepository persiste as dimensões do catálogo por upsert. Entidades
// removidas na plataforma permanecem no warehouse com o último estado visto.
type CatalogRepository interface {
	UpsertCampaigns(ctx context.Context, campaigns []domain.CampaignDim) error
	UpsertAdgroups(ctx context.Context, adgroups []domain.AdGroupDim) error
	UpsertKeywords(ctx context.Context, keywords []domain.KeywordDim) error
	UpsertAds(ctx context.Context, ads []domain.AdDim) error
}

type catalogRepository struct {
	conn *postgres.Connection
}

func NewCatalogRepository(conn *postgres.Connection) CatalogRepository {
	return &catalogRepository{
		conn: conn,
	}
}

func (r *catalogRepository) UpsertCampaigns(ctx context.Context, campaigns []domain.CampaignDim) error {
	return upsertChunked(ctx, r.conn, len(campaigns), func(q postgres.Queryer, start, end int) error {
		builder := squirrel.StatementBuilder.
			Insert("dim_campaign").
			Columns("customer_id", "campaign_id", "campaign_name", "campaign_tp", "campaign_tp_label", "status")

		for _, c := range campaigns[start:end] {
			builder = builder.Values(c.CustomerID, c.CampaignID, c.CampaignName, c.CampaignTp, c.CampaignTpLabel, c.Status)
		}

		query, args, err := builder.
			Suffix(`
				ON CONFLICT (customer_id, campaign_id) DO UPDATE SET
					campaign_name = EXCLUDED.campaign_name,
					campaign_tp = EXCLUDED.campaign_tp,
					campaign_tp_label = EXCLUDED.campaign_tp_label,
					status = EXCLUDED.status,
					updated_at = NOW()
			`).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := q.Exec(query, args...); err != nil {
			return fmt.Errorf("erro ao executar upsert de campanhas: %w", err)
		}
		return nil
	})
}

func (r *catalogRepository) UpsertAdgroups(ctx context.Context, adgroups []domain.AdGroupDim) error {
	return upsertChunked(ctx, r.conn, len(adgroups), func(q postgres.Queryer, start, end int) error {
		builder := squirrel.StatementBuilder.
			Insert("dim_adgroup").
			Columns("customer_id", "adgroup_id", "campaign_id", "adgroup_name", "status")

		for _, g := range adgroups[start:end] {
			builder = builder.Values(g.CustomerID, g.AdgroupID, g.CampaignID, g.AdgroupName, g.Status)
		}

		query, args, err := builder.
			Suffix(`
				ON CONFLICT (customer_id, adgroup_id) DO UPDATE SET
					campaign_id = EXCLUDED.campaign_id,
					adgroup_name = EXCLUDED.adgroup_name,
					status = EXCLUDED.status,
					updated_at = NOW()
			`).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := q.Exec(query, args...); err != nil {
			return fmt.Errorf("erro ao executar upsert de grupos de anúncio: %w", err)
		}
		return nil
	})
}

func (r *catalogRepository) UpsertKeywords(ctx context.Context, keywords []domain.KeywordDim) error {
	return upsertChunked(ctx, r.conn, len(keywords), func(q postgres.Queryer, start, end int) error {
		builder := squirrel.StatementBuilder.
			Insert("dim_keyword").
			Columns("customer_id", "keyword_id", "adgroup_id", "keyword", "status")

		for _, k := range keywords[start:end] {
			builder = builder.Values(k.CustomerID, k.KeywordID, k.AdgroupID, k.Keyword, k.Status)
		}

		query, args, err := builder.
			Suffix(`
				ON CONFLICT (customer_id, keyword_id) DO UPDATE SET
					adgroup_id = EXCLUDED.adgroup_id,
					keyword = EXCLUDED.keyword,
					status = EXCLUDED.status,
					updated_at = NOW()
			`).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := q.Exec(query, args...); err != nil {
			return fmt.Errorf("erro ao executar upsert de palavras-chave: %w", err)
		}
		return nil
	})
}

func (r *catalogRepository) UpsertAds(ctx context.Context, ads []domain.AdDim) error {
	return upsertChunked(ctx, r.conn, len(ads), func(q postgres.Queryer, start, end int) error {
		builder := squirrel.StatementBuilder.
			Insert("dim_ad").
			Columns(
				"customer_id", "ad_id", "adgroup_id", "ad_name", "status",
				"ad_title", "ad_desc", "pc_landing_url", "mobile_landing_url", "creative_text",
			)

		for _, a := range ads[start:end] {
			builder = builder.Values(
				a.CustomerID, a.AdID, a.AdgroupID, a.AdName, a.Status,
				a.AdTitle, a.AdDesc, a.PCLandingURL, a.MobileLandingURL, a.CreativeText,
			)
		}

		query, args, err := builder.
			Suffix(`
				ON CONFLICT (customer_id, ad_id) DO UPDATE SET
					adgroup_id = EXCLUDED.adgroup_id,
					ad_name = EXCLUDED.ad_name,
					status = EXCLUDED.status,
					ad_title = EXCLUDED.ad_title,
					ad_desc = EXCLUDED.ad_desc,
					pc_landing_url = EXCLUDED.pc_landing_url,
					mobile_landing_url = EXCLUDED.mobile_landing_url,
					creative_text = EXCLUDED.creative_text,
					updated_at = NOW()
			`).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := q.Exec(query, args...); err != nil {
			return fmt.Errorf("erro ao executar upsert de anúncios: %w", err)
		}
		return nil
	})
}
