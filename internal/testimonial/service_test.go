package testimonial

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lumadent/clinic-booking-backend/internal/catalog"
)

func newTestService() Service {
	return NewService(NewMemoryRepository(), catalog.New())
}

func validRequest() CreateRequest {
	return CreateRequest{
		PatientName: "Sarah M.",
		Rating:      5,
		Treatment:   "whitening",
		Quote:       "Best dental experience I've ever had.",
	}
}

func TestCreateTestimonial(t *testing.T) {
	svc := newTestService()

	created, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.Equal(t, "Sarah M.", created.PatientName)
	require.Equal(t, 5, created.Rating)
	require.False(t, created.CreatedAt.IsZero())

	got, err := svc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	require.Equal(t, created.Quote, got.Quote)
}

func TestCreateTrimsWhitespace(t *testing.T) {
	svc := newTestService()

	req := validRequest()
	req.PatientName = "  Sarah M.  "
	req.Quote = "  Great visit.  "

	created, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, "Sarah M.", created.PatientName)
	require.Equal(t, "Great visit.", created.Quote)
}

func TestCreateValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CreateRequest)
		wantErr error
	}{
		{"blank name", func(r *CreateRequest) { r.PatientName = "   " }, ErrNameRequired},
		{"blank quote", func(r *CreateRequest) { r.Quote = "" }, ErrQuoteRequired},
		{"quote too long", func(r *CreateRequest) { r.Quote = strings.Repeat("a", MaxQuoteLength+1) }, ErrQuoteTooLong},
		{"rating zero", func(r *CreateRequest) { r.Rating = 0 }, ErrInvalidRating},
		{"rating six", func(r *CreateRequest) { r.Rating = 6 }, ErrInvalidRating},
		{"unknown treatment", func(r *CreateRequest) { r.Treatment = "botox" }, ErrUnknownTreatment},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService()
			req := validRequest()
			tt.mutate(&req)

			_, err := svc.Create(context.Background(), req)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreateWithoutTreatment(t *testing.T) {
	svc := newTestService()

	req := validRequest()
	req.Treatment = ""

	_, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
}

func TestQuoteAtMaxLength(t *testing.T) {
	svc := newTestService()

	req := validRequest()
	req.Quote = strings.Repeat("a", MaxQuoteLength)

	_, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
}

func TestListFilters(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	seed := []CreateRequest{
		{PatientName: "Sarah M.", Rating: 5, Treatment: "whitening", Quote: "Loved it."},
		{PatientName: "James K.", Rating: 4, Treatment: "checkup", Quote: "Very thorough."},
		{PatientName: "Priya R.", Rating: 3, Treatment: "whitening", Quote: "Decent results."},
	}
	for _, req := range seed {
		_, err := svc.Create(ctx, req)
		require.NoError(t, err)
	}

	all, total, err := svc.List(ctx, Filter{})
	require.NoError(t, err)
	require.Equal(t, 3, total)
	require.Len(t, all, 3)

	whitening, total, err := svc.List(ctx, Filter{Treatment: "whitening"})
	require.NoError(t, err)
	require.Equal(t, 2, total)
	for _, item := range whitening {
		require.Equal(t, "whitening", item.Treatment)
	}

	_, total, err = svc.List(ctx, Filter{MinRating: 4})
	require.NoError(t, err)
	require.Equal(t, 2, total)

	page, total, err := svc.List(ctx, Filter{Page: 2, PageSize: 2})
	require.NoError(t, err)
	require.Equal(t, 3, total)
	require.Len(t, page, 1)
}
