package http

import (
	"net/http"
	"sync"

	"libratech/internal/assistant"
	"libratech/internal/auth"
	"libratech/internal/ledger"
	"libratech/internal/store"
	"libratech/internal/testutil"
)

var (
	hashOnce    sync.Once
	adminHash   string
	starterHash string
)

func fixtureHashes() (string, string) {
	hashOnce.Do(func() {
		adminHash, _ = auth.HashPassword("admin")
		starterHash, _ = auth.HashPassword("123456")
	})
	return adminHash, starterHash
}

type testEnv struct {
	store  *store.Memory
	ledger *ledger.Ledger
	router http.Handler
}

func newTestEnv() testEnv {
	aHash, mHash := fixtureHashes()
	st := store.NewSeeded(aHash, mHash)
	led := ledger.New(st)

	router := NewRouter(RouterConfig{
		Store:       st,
		Ledger:      led,
		Librarian:   assistant.New("", ""),
		JWTSecret:   testutil.TestSecret,
		StarterHash: mHash,
	})
	return testEnv{store: st, ledger: led, router: router}
}

func adminToken() string {
	return testutil.GenerateTestToken(testutil.TestSecret, "A001", auth.RoleAdmin)
}

func memberToken(id string) string {
	return testutil.GenerateTestToken(testutil.TestSecret, id, auth.RoleMember)
}
