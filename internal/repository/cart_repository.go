package repository

import (
	"context"
	"database/sql"

	"cart-service/internal/entity"
)

type CartRepository struct {
	db *sql.DB
}

func NewCartRepository(db *sql.DB) *CartRepository {
	return &CartRepository{db}
}

// GetServicesByName returns every services row named serviceName with its
// service_list rows attached. No match yields an empty slice and a nil error.
func (r *CartRepository) GetServicesByName(ctx context.Context, serviceName string) ([]entity.CatalogEntry, error) {
	serviceQuery := `SELECT service_id, service_name, description, service_image FROM services WHERE service_name = ? ORDER BY service_id`

	rows, err := r.db.QueryContext(ctx, serviceQuery, serviceName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []entity.CatalogEntry{}
	for rows.Next() {
		var entry entity.CatalogEntry
		var description, image sql.NullString
		if err := rows.Scan(&entry.ServiceID, &entry.ServiceName, &description, &image); err != nil {
			return nil, err
		}
		entry.Description = description.String
		entry.ServiceImage = image.String
		entry.ServiceList = []entity.ServiceListItem{}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(entries) == 0 {
		return entries, nil
	}

	ids := make([]int64, 0, len(entries))
	index := make(map[int64]int, len(entries))
	for i, entry := range entries {
		ids = append(ids, entry.ServiceID)
		index[entry.ServiceID] = i
	}

	listQuery := `SELECT service_list_id, service_id, service_lists, price, unit FROM service_list WHERE ` +
		inClause("service_id", len(ids)) + ` ORDER BY service_list_id`

	listRows, err := r.db.QueryContext(ctx, listQuery, int64Args(ids)...)
	if err != nil {
		return nil, err
	}
	defer listRows.Close()

	for listRows.Next() {
		var item entity.ServiceListItem
		var unit sql.NullString
		if err := listRows.Scan(&item.ServiceListID, &item.ServiceID, &item.ServiceLists, &item.Price, &unit); err != nil {
			return nil, err
		}
		item.Unit = unit.String
		i, ok := index[item.ServiceID]
		if !ok {
			continue
		}
		entries[i].ServiceList = append(entries[i].ServiceList, item)
	}

	return entries, listRows.Err()
}
