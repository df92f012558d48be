package defaults

import (
	"testing"
	"time"
)

func TestTimeoutOrdering(t *testing.T) {
	if HTTPRetryDelay >= HTTPClientTimeout {
		t.Error("retry delay must be shorter than the request timeout")
	}
	if time.Duration(HTTPRetryAttempts)*HTTPClientTimeout >= CollectTimeout {
		t.Error("a single fully-retried call must fit within the collect timeout")
	}
}

func TestLimitsArePositive(t *testing.T) {
	for name, v := range map[string]int{
		"PageLimit":            PageLimit,
		"FirmwareDeviceLimit":  FirmwareDeviceLimit,
		"InventoryLimit":       InventoryLimit,
		"APIRequestsPerSecond": APIRequestsPerSecond,
		"APIBurst":             APIBurst,
		"HTTPRetryAttempts":    HTTPRetryAttempts,
	} {
		if v <= 0 {
			t.Errorf("%s = %d, want > 0", name, v)
		}
	}
}
