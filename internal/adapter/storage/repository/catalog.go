package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/snackhub/snackshop/internal/core/domain"
)

const snackColumns = "id, category_id, name, description, price, stock, " +
	"cover_image, status, sales_count, create_time, update_time"

func (r *Repository) CreateSnack(ctx context.Context, snack *domain.Snack) (*domain.Snack, error) {
	statement := r.db.QueryBuilder.
		Insert("snacks").
		Columns("category_id", "name", "description", "price", "stock",
			"cover_image", "status", "sales_count", "create_time", "update_time").
		Values(snack.CategoryID, snack.Name, snack.Description, snack.Price, snack.Stock,
			snack.CoverImage, snack.Status, snack.SalesCount, snack.CreateTime, snack.UpdateTime).
		Suffix("returning id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&snack.ID)
	if err != nil {
		return nil, err
	}
	return snack, nil
}

// UpdateSnack edits the live catalog row. Stock set here goes through the
// same column the order transactions decrement, still guarded by the
// non-negative check constraint.
func (r *Repository) UpdateSnack(ctx context.Context, snack *domain.Snack) (*domain.Snack, error) {
	statement := r.db.QueryBuilder.
		Update("snacks").
		Set("category_id", snack.CategoryID).
		Set("name", snack.Name).
		Set("description", snack.Description).
		Set("price", snack.Price).
		Set("stock", snack.Stock).
		Set("cover_image", snack.CoverImage).
		Set("status", snack.Status).
		Set("update_time", snack.UpdateTime).
		Where(sq.Eq{"id": snack.ID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	ct, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	if ct.RowsAffected() == 0 {
		return nil, domain.ErrDataNotFound
	}
	return snack, nil
}

func (r *Repository) GetSnack(ctx context.Context, snackID uint64) (*domain.Snack, error) {
	statement := r.db.QueryBuilder.
		Select(snackColumns).
		From("snacks").
		Where(sq.Eq{"id": snackID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	snack := domain.Snack{}

	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&snack.ID,
		&snack.CategoryID,
		&snack.Name,
		&snack.Description,
		&snack.Price,
		&snack.Stock,
		&snack.CoverImage,
		&snack.Status,
		&snack.SalesCount,
		&snack.CreateTime,
		&snack.UpdateTime,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	return &snack, nil
}

func (r *Repository) ListSnacks(ctx context.Context, filter domain.SnackFilter) ([]*domain.Snack, uint64, error) {
	conds := sq.And{}
	if filter.Status != "" {
		conds = append(conds, sq.Eq{"status": filter.Status})
	}
	if filter.CategoryID != 0 {
		conds = append(conds, sq.Eq{"category_id": filter.CategoryID})
	}
	if filter.Name != "" {
		conds = append(conds, sq.ILike{"name": "%" + filter.Name + "%"})
	}

	countSt := r.db.QueryBuilder.
		Select("count(*)").
		From("snacks")
	if len(conds) > 0 {
		countSt = countSt.Where(conds)
	}

	sql, args, err := countSt.ToSql()
	if err != nil {
		return nil, 0, err
	}

	var total uint64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	limit, offset := pageBounds(filter.Page, filter.Size)

	statement := r.db.QueryBuilder.
		Select(snackColumns).
		From("snacks").
		OrderBy("create_time DESC").
		Limit(limit).
		Offset(offset)
	if len(conds) > 0 {
		statement = statement.Where(conds)
	}

	sql, args, err = statement.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	list := make([]*domain.Snack, 0)
	for rows.Next() {
		snack := domain.Snack{}
		err := rows.Scan(
			&snack.ID,
			&snack.CategoryID,
			&snack.Name,
			&snack.Description,
			&snack.Price,
			&snack.Stock,
			&snack.CoverImage,
			&snack.Status,
			&snack.SalesCount,
			&snack.CreateTime,
			&snack.UpdateTime,
		)
		if err != nil {
			return nil, 0, err
		}
		list = append(list, &snack)
	}

	return list, total, rows.Err()
}
