package entropy

// Observer is notified of every provider decision a Source makes.
// Implementations must be safe for concurrent use.
type Observer interface {
	// Served is called once per buffer with the provider that produced it.
	Served(provider string, strength Strength)
	// Skipped is called for every provider that failed before a buffer was
	// produced.
	Skipped(provider string, err error)
}

// Observers fans a notification out to several observers.
type Observers []Observer

// Served implements Observer.
func (o Observers) Served(provider string, strength Strength) {
	for _, obs := range o {
		obs.Served(provider, strength)
	}
}

// Skipped implements Observer.
func (o Observers) Skipped(provider string, err error) {
	for _, obs := range o {
		obs.Skipped(provider, err)
	}
}

type nopObserver struct{}

func (nopObserver) Served(string, Strength) {}
func (nopObserver) Skipped(string, error)   {}
