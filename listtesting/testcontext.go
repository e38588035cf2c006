package listtesting

import (
	"math/rand"
	"sort"
	"testing"
	"time"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type TestContext struct {
	Log   logger.Logger
	T     *testing.T
	Rand  *rand.Rand
	Label string
	Seed  int64
}

type TestConfig struct {
	// We seed the RNG from StartTimeMS. It is normal to force it to some
	// fixed value so that the generated data is the same from run to run.
	// Zero means use the current time.
	StartTimeMS     int64
	TestLabelPrefix string // can be "", a unique label is generated
	LogLevel        string // defaults to NOOP
}

// Tracker is anything that accounts for its live allocations.
type Tracker interface {
	Live() int
}

func NewTestContext(t *testing.T, cfg TestConfig) TestContext {
	c := TestContext{
		T: t,
	}

	level := cfg.LogLevel
	if level == "" {
		level = "NOOP"
	}
	logger.New(level)

	c.Label = cfg.TestLabelPrefix
	if c.Label == "" {
		c.Label = "listtesting-" + uuid.NewString()
	}
	c.Log = logger.Sugar.WithServiceName(c.Label)

	c.Seed = cfg.StartTimeMS
	if c.Seed == 0 {
		c.Seed = time.Now().UnixMilli()
	}
	c.Rand = rand.New(rand.NewSource(c.Seed))

	// so a failing randomised run can be repeated
	t.Logf("%s: seed %d", c.Label, c.Seed)
	c.Log.Infof("seed %d", c.Seed)
	return c
}

func (c *TestContext) GetLog() logger.Logger { return c.Log }

// RandomValues returns n values drawn uniformly from [0, maxValue].
func (c *TestContext) RandomValues(n int, maxValue int) []int {
	values := make([]int, n)
	for i := range values {
		values[i] = c.Rand.Intn(maxValue + 1)
	}
	return values
}

// Sorted returns an ascending copy of values.
func Sorted(values []int) []int {
	out := append([]int{}, values...)
	sort.Ints(out)
	return out
}

// RequireBalanced fails the test if tr still holds live allocations.
func (c *TestContext) RequireBalanced(tr Tracker) {
	require.Zero(c.T, tr.Live(), "allocations and releases are not balanced")
}

// RequireNonDecreasing fails the test unless values are in ascending order.
func (c *TestContext) RequireNonDecreasing(values []int) {
	for i := 1; i < len(values); i++ {
		require.LessOrEqual(c.T, values[i-1], values[i], "out of order at %d: %v", i, values)
	}
}
