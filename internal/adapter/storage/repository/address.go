package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/snackhub/snackshop/internal/core/domain"
)

const addressColumns = "id, user_id, receiver, phone, detail, is_default, create_time, update_time"

func (r *Repository) CreateAddress(ctx context.Context, address *domain.Address) (*domain.Address, error) {
	statement := r.db.QueryBuilder.
		Insert("addresses").
		Columns("user_id", "receiver", "phone", "detail", "is_default").
		Values(address.UserID, address.Receiver, address.Phone, address.Detail, address.IsDefault).
		Suffix("returning id, create_time, update_time")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&address.ID,
		&address.CreateTime,
		&address.UpdateTime,
	)
	if err != nil {
		return nil, err
	}
	return address, nil
}

func (r *Repository) ListAddressesByUser(ctx context.Context, userID uint64) ([]*domain.Address, error) {
	statement := r.db.QueryBuilder.
		Select(addressColumns).
		From("addresses").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("is_default DESC", "create_time DESC")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.Address, 0)
	for rows.Next() {
		address := domain.Address{}
		err := rows.Scan(
			&address.ID,
			&address.UserID,
			&address.Receiver,
			&address.Phone,
			&address.Detail,
			&address.IsDefault,
			&address.CreateTime,
			&address.UpdateTime,
		)
		if err != nil {
			return nil, err
		}
		list = append(list, &address)
	}

	return list, rows.Err()
}

// GetAddress resolves an address only when it belongs to userID.
func (r *Repository) GetAddress(ctx context.Context, addressID uint64, userID uint64) (*domain.Address, error) {
	statement := r.db.QueryBuilder.
		Select(addressColumns).
		From("addresses").
		Where(sq.Eq{"id": addressID, "user_id": userID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	address := domain.Address{}

	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&address.ID,
		&address.UserID,
		&address.Receiver,
		&address.Phone,
		&address.Detail,
		&address.IsDefault,
		&address.CreateTime,
		&address.UpdateTime,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	return &address, nil
}
