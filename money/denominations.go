package money

// Predefined values for the canonical coins and notes of the dinar.
// Each holds a single unit of its denomination.
var (
	Zero = NewFromAmount(0)

	OnePiaster         = NewFromAmount(0.01)
	FivePiasters       = NewFromAmount(0.05)
	TenPiasters        = NewFromAmount(0.10)
	TwentyFivePiasters = NewFromAmount(0.25)
	FiftyPiasters      = NewFromAmount(0.50)

	OneDinar     = NewFromAmount(1.00)
	FiveDinars   = NewFromAmount(5.00)
	TenDinars    = NewFromAmount(10.00)
	TwentyDinars = NewFromAmount(20.00)
	FiftyDinars  = NewFromAmount(50.00)
)
