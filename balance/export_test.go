package balance

// Test bridges for the internal Kolmogorov–Smirnov kernels, so the
// external test package can pin their behavior without widening the
// production API.
var (
	KSStatistic = ksStatistic
	KSPValue    = ksPValue
)
