package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/snackhub/snackshop/internal/core/domain"
)

func (r *Repository) UpsertCartLine(ctx context.Context, line *domain.CartLine) (*domain.CartLine, error) {
	statement := r.db.QueryBuilder.
		Insert("carts").
		Columns("user_id", "snack_id", "quantity").
		Values(line.UserID, line.SnackID, line.Quantity).
		Suffix("on conflict (user_id, snack_id) do update set " +
			"quantity = carts.quantity + excluded.quantity, update_time = now() " +
			"returning id, quantity, create_time, update_time")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&line.ID,
		&line.Quantity,
		&line.CreateTime,
		&line.UpdateTime,
	)
	if err != nil {
		return nil, err
	}
	return line, nil
}

// ListCartLinesByUser returns the user's cart with the current snack row
// attached for display. The snack data here is live, not a snapshot.
func (r *Repository) ListCartLinesByUser(ctx context.Context, userID uint64) ([]*domain.CartLine, error) {
	statement := r.db.QueryBuilder.
		Select("c.id", "c.user_id", "c.snack_id", "c.quantity", "c.create_time", "c.update_time",
			"s.id", "s.name", "s.price", "s.stock", "s.cover_image", "s.status").
		From("carts c").
		Join("snacks s on s.id = c.snack_id").
		Where(sq.Eq{"c.user_id": userID}).
		OrderBy("c.create_time DESC")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.CartLine, 0)
	for rows.Next() {
		line := domain.CartLine{Snack: &domain.Snack{}}
		err := rows.Scan(
			&line.ID,
			&line.UserID,
			&line.SnackID,
			&line.Quantity,
			&line.CreateTime,
			&line.UpdateTime,
			&line.Snack.ID,
			&line.Snack.Name,
			&line.Snack.Price,
			&line.Snack.Stock,
			&line.Snack.CoverImage,
			&line.Snack.Status,
		)
		if err != nil {
			return nil, err
		}
		list = append(list, &line)
	}

	return list, rows.Err()
}

func (r *Repository) GetCartLines(ctx context.Context, ids []uint64, userID uint64) ([]*domain.CartLine, error) {
	statement := r.db.QueryBuilder.
		Select("id", "user_id", "snack_id", "quantity", "create_time", "update_time").
		From("carts").
		Where(sq.Eq{"id": ids, "user_id": userID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.CartLine, 0)
	for rows.Next() {
		line := domain.CartLine{}
		err := rows.Scan(
			&line.ID,
			&line.UserID,
			&line.SnackID,
			&line.Quantity,
			&line.CreateTime,
			&line.UpdateTime,
		)
		if err != nil {
			return nil, err
		}
		list = append(list, &line)
	}

	return list, rows.Err()
}

func (r *Repository) DeleteCartLines(ctx context.Context, ids []uint64, userID uint64) error {
	statement := r.db.QueryBuilder.
		Delete("carts").
		Where(sq.Eq{"id": ids, "user_id": userID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}
