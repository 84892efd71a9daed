package constants

// MoreLife session pricing in naira, keyed by session type.
var MoreLifePricing = map[string]float64{
	"private_2weeks": 85000,
	"private_1week":  45000,
	"joint":          30000,
}
