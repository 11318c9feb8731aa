package repositories

import (
	"context"
	"errors"

	"github.com/Rakhulsr/go-digistore/app/models"
	"github.com/Rakhulsr/go-digistore/app/storage"
)

type LedgerRepositoryImpl interface {
	GetPurchasedIDs(ctx context.Context) ([]string, error)
	RecordOwnership(ctx context.Context, assetID string) error
	GetHistory(ctx context.Context) ([]models.OrderRecord, error)
	RecordOrder(ctx context.Context, order models.OrderRecord) error
	GetLastCustomer(ctx context.Context) (*models.Customer, error)
	SaveLastCustomer(ctx context.Context, customer models.Customer) error
}

type ledgerRepository struct {
	store storage.Store
}

func NewLedgerRepository(store storage.Store) LedgerRepositoryImpl {
	return &ledgerRepository{store: store}
}

func (l *ledgerRepository) GetPurchasedIDs(ctx context.Context) ([]string, error) {
	var ids []string
	err := l.store.Get(ctx, storage.KeyPurchasedAssets, &ids)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return []string{}, nil
		}
		return nil, err
	}
	return ids, nil
}

// RecordOwnership appends the asset id unless it is already present, then
// writes the whole list back. The membership check keeps the ownership set
// deduplicated across repeat checkouts of the same asset.
func (l *ledgerRepository) RecordOwnership(ctx context.Context, assetID string) error {
	ids, err := l.GetPurchasedIDs(ctx)
	if err != nil {
		return err
	}

	for _, id := range ids {
		if id == assetID {
			return nil
		}
	}

	ids = append(ids, assetID)
	return l.store.Set(ctx, storage.KeyPurchasedAssets, ids)
}

func (l *ledgerRepository) GetHistory(ctx context.Context) ([]models.OrderRecord, error) {
	var history []models.OrderRecord
	err := l.store.Get(ctx, storage.KeyPurchaseHistory, &history)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return []models.OrderRecord{}, nil
		}
		return nil, err
	}
	return history, nil
}

// RecordOrder prepends so the newest order is always first. History is
// append-only and grows without bound; repeat purchases add a record even
// when ownership is already granted.
func (l *ledgerRepository) RecordOrder(ctx context.Context, order models.OrderRecord) error {
	history, err := l.GetHistory(ctx)
	if err != nil {
		return err
	}

	history = append([]models.OrderRecord{order}, history...)
	return l.store.Set(ctx, storage.KeyPurchaseHistory, history)
}

func (l *ledgerRepository) GetLastCustomer(ctx context.Context) (*models.Customer, error) {
	var customer models.Customer
	err := l.store.Get(ctx, storage.KeyLastCustomer, &customer)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &customer, nil
}

func (l *ledgerRepository) SaveLastCustomer(ctx context.Context, customer models.Customer) error {
	return l.store.Set(ctx, storage.KeyLastCustomer, customer)
}
