package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

// prescriptionRedirect is where the storefront sends users whose cart needs a prescription.
const prescriptionRedirect = "/recetas"

// checkoutService implements the CheckoutUsecase interface.
type checkoutService struct {
	orchestrator service.OrchestratorService
	session      usecase.SessionUsecase
	cart         usecase.CartUsecase
	clock        service.Clock
	logger       *slog.Logger
}

// NewCheckoutService is the constructor for checkoutService.
func NewCheckoutService(
	orchestrator service.OrchestratorService,
	session usecase.SessionUsecase,
	cart usecase.CartUsecase,
	clock service.Clock,
	logger *slog.Logger,
) usecase.CheckoutUsecase {
	if clock == nil {
		clock = service.SystemClock()
	}

	return &checkoutService{
		orchestrator: orchestrator,
		session:      session,
		cart:         cart,
		clock:        clock,
		logger:       logger,
	}
}

// Checkout registers the active cart as a purchase through the orchestrator.
// The cart is only cleared once the orchestrator confirmed the purchase.
func (srv *checkoutService) Checkout(ctx context.Context) (*entity.CheckoutReceipt, error) {
	logger := deliverycontext.LoggerFromContext(ctx, srv.logger)

	identity := srv.session.Identity()
	if !srv.session.IsAuthenticated(ctx) || identity == nil || identity.SubjectID == "" {
		return nil, errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	cart := srv.cart.Snapshot()
	if cart.IsEmpty() {
		return nil, errors.WithStack(domainerrors.ErrEmptyCart)
	}

	payload, err := srv.orchestrator.RegisterPurchase(ctx, entity.NewOrchestratedPurchase(identity.SubjectID, cart))
	if err != nil {
		if missing, ok := missingPrescriptions(err); ok {
			logger.Info("Checkout blocked by missing prescriptions", slog.Any("products", missing))

			return nil, errors.WithStack(domainerrors.ErrPrescriptionRequired.WithDetails(domainerrors.PrescriptionRequiredDetails{
				Products:   missing,
				RedirectTo: prescriptionRedirect,
			}))
		}

		return nil, errors.Wrap(err, "failed to register purchase")
	}

	srv.cart.ClearCart(ctx)

	logger.Info("Purchase registered",
		slog.String("subject", identity.SubjectID),
		slog.Int("items", cart.TotalItems()),
	)

	return &entity.CheckoutReceipt{
		Total:      cart.TotalPrice(),
		TotalItems: cart.TotalItems(),
		PlacedAt:   srv.clock.Now(),
		Lines:      cart.Lines,
		Upstream:   payload,
	}, nil
}

// missingPrescriptions extracts the product list of a 400 reply that rejected the purchase for lack of prescriptions.
func missingPrescriptions(err error) ([]string, bool) {
	var upstream *domainerrors.UpstreamError
	if !errors.As(err, &upstream) || upstream.Status() != http.StatusBadRequest {
		return nil, false
	}

	var details struct {
		Products []json.RawMessage `json:"productos_sin_receta"`
	}
	if len(upstream.RawDetails()) == 0 || json.Unmarshal(upstream.RawDetails(), &details) != nil || details.Products == nil {
		return nil, false
	}

	products := make([]string, 0, len(details.Products))
	for _, raw := range details.Products {
		var name string
		if json.Unmarshal(raw, &name) == nil {
			products = append(products, name)

			continue
		}
		products = append(products, string(raw))
	}

	return products, true
}
