package repository

import (
	"github.com/StarickDosSantos/FactBP/internal/invoice/domain"
	"github.com/StarickDosSantos/FactBP/internal/kv"
	"github.com/StarickDosSantos/FactBP/internal/storage"
)

func Provide(store kv.Store) domain.Repository {
	return storage.NewCollection[domain.Invoice](store, storage.KeyInvoices)
}
