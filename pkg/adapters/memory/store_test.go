package memory_test

import (
	"testing"

	"github.com/aretw0/knobs/pkg/adapters/memory"
	"github.com/aretw0/knobs/pkg/ports"
)

func TestMemoryStore_Contract(t *testing.T) {
	store := memory.NewStore()
	ports.RunValueStoreContract(t, store)
}
