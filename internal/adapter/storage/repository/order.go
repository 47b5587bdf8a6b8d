package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/snackhub/snackshop/internal/core/domain"
)

const orderColumns = "id, order_no, user_id, address_id, total_amount, status, remark, " +
	"create_time, payment_time, ship_time, complete_time, cancel_time"

// CreateOrder persists the order header and its items, deletes the
// consumed cart lines and reserves stock, all within one transaction.
// Each stock decrement is conditional on the remaining stock, so two
// concurrent orders can never drive it negative; a decrement that
// affects no rows aborts the whole transaction with ErrStockUpdateFailed.
func (r *Repository) CreateOrder(ctx context.Context, order *domain.Order,
	consumeCartIDs []uint64) (*domain.Order, error) {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		orderSt := r.db.QueryBuilder.
			Insert("orders").
			Columns("order_no", "user_id", "address_id", "total_amount", "status", "remark", "create_time").
			Values(order.OrderNo, order.UserID, order.AddressID,
				order.TotalAmount, order.Status, order.Remark, order.CreateTime).
			Suffix("returning id")

		sql, args, err := orderSt.ToSql()
		if err != nil {
			return err
		}

		err = tx.QueryRow(ctx, sql, args...).Scan(&order.ID)
		if err != nil {
			return err
		}

		for _, item := range order.Items {
			item.OrderID = order.ID

			itemSt := r.db.QueryBuilder.
				Insert("order_items").
				Columns("order_id", "snack_id", "quantity", "price", "snack_name", "snack_image", "create_time").
				Values(item.OrderID, item.SnackID, item.Quantity,
					item.Price, item.SnackName, item.SnackImage, item.CreateTime).
				Suffix("returning id")

			sql, args, err := itemSt.ToSql()
			if err != nil {
				return err
			}

			err = tx.QueryRow(ctx, sql, args...).Scan(&item.ID)
			if err != nil {
				return err
			}
		}

		if len(consumeCartIDs) > 0 {
			deleteSt := r.db.QueryBuilder.
				Delete("carts").
				Where(sq.Eq{"id": consumeCartIDs, "user_id": order.UserID})

			sql, args, err := deleteSt.ToSql()
			if err != nil {
				return err
			}

			_, err = tx.Exec(ctx, sql, args...)
			if err != nil {
				return err
			}
		}

		for _, item := range order.Items {
			err := decrementStock(ctx, tx, r, item.SnackID, item.Quantity)
			if err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, domain.ErrConflictingData
		}
		return nil, err
	}

	return order, nil
}

// decrementStock applies the conditional decrement: the stock floor is
// part of the predicate, not checked after the fact.
func decrementStock(ctx context.Context, tx pgx.Tx, r *Repository, snackID uint64, quantity int64) error {
	st := r.db.QueryBuilder.
		Update("snacks").
		Set("stock", sq.Expr("stock - ?", quantity)).
		Where(sq.Eq{"id": snackID}).
		Where(sq.GtOrEq{"stock": quantity})

	sql, args, err := st.ToSql()
	if err != nil {
		return err
	}

	ct, err := tx.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return domain.ErrStockUpdateFailed
	}
	return nil
}

func incrementStock(ctx context.Context, tx pgx.Tx, r *Repository, snackID uint64, quantity int64) error {
	st := r.db.QueryBuilder.
		Update("snacks").
		Set("stock", sq.Expr("stock + ?", quantity)).
		Where(sq.Eq{"id": snackID})

	sql, args, err := st.ToSql()
	if err != nil {
		return err
	}

	ct, err := tx.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return domain.ErrStockUpdateFailed
	}
	return nil
}

// UpdateOrderStatus flips the order status and the matching timestamp.
// The update predicate carries the expected prior status, so a racing
// transition loses with zero rows affected and the transaction rolls
// back. When restock is set every order item's quantity is returned to
// its snack in the same transaction.
func (r *Repository) UpdateOrderStatus(ctx context.Context, order *domain.Order,
	prior domain.OrderStatus, restock bool) error {
	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		st := r.db.QueryBuilder.
			Update("orders").
			Set("status", order.Status).
			Where(sq.Eq{"id": order.ID, "status": prior})

		switch order.Status {
		case domain.OrderStatusPaid:
			st = st.Set("payment_time", order.PaymentTime)
		case domain.OrderStatusShipped:
			st = st.Set("ship_time", order.ShipTime)
		case domain.OrderStatusCompleted:
			st = st.Set("complete_time", order.CompleteTime)
		case domain.OrderStatusCancelled:
			st = st.Set("cancel_time", order.CancelTime)
		}

		sql, args, err := st.ToSql()
		if err != nil {
			return err
		}

		ct, err := tx.Exec(ctx, sql, args...)
		if err != nil {
			return err
		}
		if ct.RowsAffected() == 0 {
			return domain.ErrInvalidStateTransition
		}

		if restock {
			items, err := r.listOrderItems(ctx, tx, order.ID)
			if err != nil {
				return err
			}
			for _, item := range items {
				err := incrementStock(ctx, tx, r, item.SnackID, item.Quantity)
				if err != nil {
					return err
				}
			}
		}

		return nil
	})
}

func (r *Repository) GetOrder(ctx context.Context, orderID uint64) (*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select(orderColumns).
		From("orders").
		Where(sq.Eq{"id": orderID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	order := domain.Order{}

	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&order.ID,
		&order.OrderNo,
		&order.UserID,
		&order.AddressID,
		&order.TotalAmount,
		&order.Status,
		&order.Remark,
		&order.CreateTime,
		&order.PaymentTime,
		&order.ShipTime,
		&order.CompleteTime,
		&order.CancelTime,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	return &order, nil
}

func (r *Repository) ListOrderItems(ctx context.Context, orderID uint64) ([]*domain.OrderItem, error) {
	return r.listOrderItems(ctx, r.db, orderID)
}

type queryer interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func (r *Repository) listOrderItems(ctx context.Context, q queryer, orderID uint64) ([]*domain.OrderItem, error) {
	statement := r.db.QueryBuilder.
		Select("id", "order_id", "snack_id", "quantity", "price", "snack_name", "snack_image", "create_time").
		From("order_items").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.OrderItem, 0)
	for rows.Next() {
		item := domain.OrderItem{}
		err := rows.Scan(
			&item.ID,
			&item.OrderID,
			&item.SnackID,
			&item.Quantity,
			&item.Price,
			&item.SnackName,
			&item.SnackImage,
			&item.CreateTime,
		)
		if err != nil {
			return nil, err
		}
		list = append(list, &item)
	}

	return list, rows.Err()
}

func (r *Repository) ListOrdersByUser(ctx context.Context, userID uint64,
	filter domain.OrderFilter) ([]*domain.Order, uint64, error) {
	conds := sq.And{sq.Eq{"user_id": userID}}
	if filter.Status != "" {
		conds = append(conds, sq.Eq{"status": filter.Status})
	}
	return r.listOrders(ctx, conds, filter)
}

func (r *Repository) ListOrders(ctx context.Context, filter domain.OrderFilter) ([]*domain.Order, uint64, error) {
	conds := sq.And{}
	if filter.Status != "" {
		conds = append(conds, sq.Eq{"status": filter.Status})
	}
	if filter.OrderNo != "" {
		conds = append(conds, sq.ILike{"order_no": "%" + filter.OrderNo + "%"})
	}
	return r.listOrders(ctx, conds, filter)
}

func (r *Repository) listOrders(ctx context.Context, conds sq.And,
	filter domain.OrderFilter) ([]*domain.Order, uint64, error) {
	countSt := r.db.QueryBuilder.
		Select("count(*)").
		From("orders")
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
		Select(orderColumns).
		From("orders").
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

	list := make([]*domain.Order, 0)
	for rows.Next() {
		order := domain.Order{}
		err := rows.Scan(
			&order.ID,
			&order.OrderNo,
			&order.UserID,
			&order.AddressID,
			&order.TotalAmount,
			&order.Status,
			&order.Remark,
			&order.CreateTime,
			&order.PaymentTime,
			&order.ShipTime,
			&order.CompleteTime,
			&order.CancelTime,
		)
		if err != nil {
			return nil, 0, err
		}
		list = append(list, &order)
	}

	return list, total, rows.Err()
}
