package integrity

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestLoader(t *testing.T) {
	disks, _ := setupDisks(t)
	// Pass nil db for this test as we don't access it unless we use the service
	feature := NewFeature(NewService(disks, []string{"local"}, "uploads", nil, zap.NewNop()))

	assert.Equal(t, "integrity", feature.Name())
	assert.True(t, feature.IsEnabled())

	app := fiber.New()
	err := feature.Load(app)
	assert.NoError(t, err)
}
