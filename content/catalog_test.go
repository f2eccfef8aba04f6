package content

import (
	"strings"
	"testing"
)

func TestEShopItems(t *testing.T) {
	if len(EShopItems) != 5 {
		t.Fatalf("expected 5 storefront tiles, got %d", len(EShopItems))
	}
	for i, item := range EShopItems {
		if item.Name == "" {
			t.Errorf("item %d: empty name", i)
		}
		if !strings.HasPrefix(item.Price, "$") || !strings.HasSuffix(item.Price, ".99") {
			t.Errorf("item %d: price %q not in storefront format", i, item.Price)
		}
	}
}

func TestStorageFigures(t *testing.T) {
	if StorageUsedGB > StorageTotalGB {
		t.Errorf("storage used %d exceeds total %d", StorageUsedGB, StorageTotalGB)
	}
}

func TestListsNonEmpty(t *testing.T) {
	lists := map[string]int{
		"news":        len(NewsHeadlines),
		"friends":     len(Friends),
		"cards":       len(VirtualGameCards),
		"controllers": len(PairedControllers),
		"faq":         len(FAQ),
	}
	for name, n := range lists {
		if n == 0 {
			t.Errorf("%s list is empty", name)
		}
	}
}
