package store

import "context"

type keyedTokenStore struct {
	storage SessionStorage
	key     string
}

// NewTokenStore returns a [TokenStore] that keeps the token in storage under
// key.
func NewTokenStore(storage SessionStorage, key string) TokenStore {
	return &keyedTokenStore{storage: storage, key: key}
}

func (k *keyedTokenStore) Get(ctx context.Context) (string, error) {
	return k.storage.GetItem(ctx, k.key)
}

func (k *keyedTokenStore) Set(ctx context.Context, token string) error {
	return k.storage.SetItem(ctx, k.key, token)
}

func (k *keyedTokenStore) Remove(ctx context.Context) error {
	return k.storage.RemoveItem(ctx, k.key)
}

// NopTokenStore is the [TokenStore] used when no session storage is
// available. It never holds a token and accepts every write.
type NopTokenStore struct{}

func (NopTokenStore) Get(context.Context) (string, error) { return "", ErrItemNotFound }
func (NopTokenStore) Set(context.Context, string) error   { return nil }
func (NopTokenStore) Remove(context.Context) error        { return nil }
