package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-workbench-api/internal/domain"
)

func TestUpdateHoldingRequest_Apply_MergesPresentFieldsOnly(t *testing.T) {
	original := &domain.Holding{
		Quantity:    decimal.NewFromInt(10),
		PortfolioID: uuid.New(),
		AssetID:     uuid.New(),
	}
	originalPortfolio := original.PortfolioID

	newQuantity := decimal.NewFromFloat(2.5)
	req := UpdateHoldingRequest{Quantity: &newQuantity}
	req.Apply(original)

	assert.True(t, newQuantity.Equal(original.Quantity))
	assert.Equal(t, originalPortfolio, original.PortfolioID, "absent field must not change")
}

func TestHoldingFilter_FieldFilters_ParsesUUIDs(t *testing.T) {
	portfolioID := uuid.New()
	raw := portfolioID.String()
	bad := "not-a-uuid"

	f := HoldingFilter{PortfolioID: &raw, AssetID: &bad}
	filters := f.FieldFilters()

	require.Contains(t, filters, "portfolio_id")
	assert.Equal(t, portfolioID, filters["portfolio_id"])
	assert.NotContains(t, filters, "asset_id", "unparseable id must be dropped")
}

func TestCreateUserRequest_Model_HashesPassword(t *testing.T) {
	req := CreateUserRequest{Username: "alice", Email: "alice@example.com", Password: "s3cret-pass"}

	user, err := req.Model()
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.NotEqual(t, "s3cret-pass", user.HashedPassword)
	assert.NotEmpty(t, user.HashedPassword)
}
