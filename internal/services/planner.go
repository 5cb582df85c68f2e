package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"courier-admin-service/internal/domain"
	"courier-admin-service/internal/ports"
)

// DestinationPick selects one customer address for a plan, with the order
// amount to bill for that stop.
type DestinationPick struct {
	CustomerID int64
	AddressID  int64
	Amount     float64
}

// PlanningSession is the mutable state of one multi-order creation flow.
// A session belongs to a single manager and never outlives confirmation
// or cancellation.
type PlanningSession struct {
	ID               string
	ManagerID        int64
	State            domain.SessionState
	SuggestedStoreID int64

	Depot        *domain.Store
	Driver       *domain.Driver
	Destinations []domain.Destination
	Plan         *domain.RoutePlan
	Schedule     *domain.ScheduleEstimate

	amounts map[int64]float64

	// Set once the order rows are committed, so a confirm retry after a
	// notification failure does not insert them again.
	persistedBatchID string

	// Re-entrancy guard: invoking compute/confirm while one is in flight
	// is a no-op, not a queued retry.
	busy sync.Mutex
}

// Planner orchestrates planning sessions: depot and destination selection,
// route computation, manual reordering, and confirmation into persisted
// orders and driver notifications.
type Planner struct {
	sequencer     *Sequencer
	estimator     *Estimator
	stores        ports.StoreRepository
	customers     ports.CustomerRepository
	drivers       ports.DriverRepository
	orders        ports.OrderRepository
	notifications ports.NotificationRepository
	prefs         ports.PreferenceStore
	logger        *zap.Logger

	mu       sync.Mutex
	sessions map[string]*PlanningSession
}

func NewPlanner(
	sequencer *Sequencer,
	estimator *Estimator,
	stores ports.StoreRepository,
	customers ports.CustomerRepository,
	drivers ports.DriverRepository,
	orders ports.OrderRepository,
	notifications ports.NotificationRepository,
	prefs ports.PreferenceStore,
	logger *zap.Logger,
) *Planner {
	return &Planner{
		sequencer:     sequencer,
		estimator:     estimator,
		stores:        stores,
		customers:     customers,
		drivers:       drivers,
		orders:        orders,
		notifications: notifications,
		prefs:         prefs,
		logger:        logger,
		sessions:      make(map[string]*PlanningSession),
	}
}

func lastStoreKey(managerID int64) string {
	return fmt.Sprintf("manager:%d:last_store", managerID)
}

// StartSession opens a fresh planning session for a manager, pre-filling
// the depot suggestion from the manager's stored preference.
func (p *Planner) StartSession(ctx context.Context, managerID int64) (*PlanningSession, error) {
	s := &PlanningSession{
		ID:        uuid.NewString(),
		ManagerID: managerID,
		State:     domain.SessionIdle,
		amounts:   make(map[int64]float64),
	}

	if v, ok, err := p.prefs.GetPreference(ctx, lastStoreKey(managerID)); err != nil {
		p.logger.Warn("depot preference read failed", zap.Int64("manager_id", managerID), zap.Error(err))
	} else if ok {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			s.SuggestedStoreID = id
		}
	}

	p.mu.Lock()
	p.sessions[s.ID] = s
	p.mu.Unlock()
	return s, nil
}

// GetSession returns a session by ID.
func (p *Planner) GetSession(sessionID string) (*PlanningSession, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	s, ok := p.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("session %q: %w", sessionID, domain.ErrNotFound)
	}
	return s, nil
}

// SelectDepot pins the session to a store and records it as the manager's
// last-used depot.
func (p *Planner) SelectDepot(ctx context.Context, sessionID string, storeID int64) error {
	s, err := p.GetSession(sessionID)
	if err != nil {
		return err
	}

	store, err := p.stores.GetStore(ctx, storeID)
	if err != nil {
		return fmt.Errorf("select depot: %w", err)
	}
	if err := store.Validate(); err != nil {
		return fmt.Errorf("select depot: %w", err)
	}

	if err := s.State.Transition(domain.SessionDepotSelected); err != nil {
		return err
	}
	s.Depot = store

	key := lastStoreKey(s.ManagerID)
	if err := p.prefs.SetPreference(ctx, key, strconv.FormatInt(storeID, 10)); err != nil {
		p.logger.Warn("depot preference write failed", zap.String("key", key), zap.Error(err))
	}
	return nil
}

// SelectDestinations assigns the driver and resolves each pick into a
// destination with a non-empty selected address.
func (p *Planner) SelectDestinations(ctx context.Context, sessionID string, driverID int64, picks []DestinationPick) error {
	s, err := p.GetSession(sessionID)
	if err != nil {
		return err
	}
	if len(picks) == 0 {
		return errors.New("select destinations: at least one customer is required")
	}

	driver, err := p.drivers.GetDriver(ctx, driverID)
	if err != nil {
		return fmt.Errorf("select destinations: %w", err)
	}
	if driver.Status != domain.DriverActive {
		return fmt.Errorf("select destinations: driver %d is %s", driverID, driver.Status)
	}

	dests := make([]domain.Destination, 0, len(picks))
	amounts := make(map[int64]float64, len(picks))
	for _, pick := range picks {
		customer, err := p.customers.GetCustomer(ctx, pick.CustomerID)
		if err != nil {
			return fmt.Errorf("select destinations: customer %d: %w", pick.CustomerID, err)
		}

		var address string
		for _, a := range customer.Addresses {
			if a.AddressID == pick.AddressID {
				address = a.Address
				break
			}
		}
		dest, err := domain.NewDestination(customer.CustomerID, customer.Name, address)
		if err != nil {
			return fmt.Errorf("select destinations: %w", err)
		}
		dests = append(dests, dest)
		amounts[customer.CustomerID] = pick.Amount
	}

	if err := s.State.Transition(domain.SessionDestinationsSelected); err != nil {
		return err
	}
	s.Driver = driver
	s.Destinations = dests
	s.amounts = amounts
	return nil
}

// ComputeRoutes sequences the session's destinations and derives the
// schedule estimate. Re-invocation while a computation is in flight is a
// no-op (ErrSessionBusy).
func (p *Planner) ComputeRoutes(ctx context.Context, sessionID string, returnOption domain.ReturnOption) error {
	s, err := p.GetSession(sessionID)
	if err != nil {
		return err
	}
	if !s.busy.TryLock() {
		return domain.ErrSessionBusy
	}
	defer s.busy.Unlock()

	if s.Depot == nil || s.Driver == nil || len(s.Destinations) == 0 {
		return errors.New("compute routes: depot, driver and destinations must be selected first")
	}

	plan, err := p.sequencer.BuildPlan(ctx, *s.Depot, s.Destinations, returnOption)
	if err != nil {
		return err
	}

	schedule, err := p.estimator.Estimate(ctx, plan, s.Driver.DriverID)
	if err != nil {
		return err
	}

	if err := s.State.Transition(domain.SessionRoutesComputed); err != nil {
		return err
	}
	s.Plan = plan
	s.Schedule = schedule
	return nil
}

// Reorder swaps a delivery leg with its neighbor, re-chains the plan, and
// recomputes the schedule, re-entering the RoutesComputed state.
func (p *Planner) Reorder(ctx context.Context, sessionID string, legIndex int, up bool) error {
	s, err := p.GetSession(sessionID)
	if err != nil {
		return err
	}
	if s.Plan == nil {
		return errors.New("reorder: no computed plan")
	}

	if up {
		err = s.Plan.MoveUp(legIndex)
	} else {
		err = s.Plan.MoveDown(legIndex)
	}
	if err != nil {
		return err
	}

	schedule, err := p.estimator.Estimate(ctx, s.Plan, s.Driver.DriverID)
	if err != nil {
		return err
	}

	if err := s.State.Transition(domain.SessionRoutesComputed); err != nil {
		return err
	}
	s.Schedule = schedule
	return nil
}

// Confirm persists one order per leg (the return leg included, with no
// customer and a zero amount) under a fresh batch ID, then writes one
// notification per delivery leg. A failure between the two writes leaves
// orders without notifications; there is no compensating cleanup. The
// session remembers a committed batch, so retrying only re-attempts the
// notifications rather than inserting the orders a second time.
func (p *Planner) Confirm(ctx context.Context, sessionID string) (string, error) {
	s, err := p.GetSession(sessionID)
	if err != nil {
		return "", err
	}
	if !s.busy.TryLock() {
		return "", domain.ErrSessionBusy
	}
	defer s.busy.Unlock()

	if s.Plan == nil || s.Schedule == nil {
		return "", errors.New("confirm: no computed plan")
	}
	if len(s.Schedule.Legs) != len(s.Plan.Legs) {
		return "", errors.New("confirm: schedule is out of step with the plan")
	}

	if err := s.State.Transition(domain.SessionAwaitingConfirmation); err != nil {
		return "", err
	}

	batchID := s.persistedBatchID
	if batchID == "" {
		batchID = uuid.NewString()
		orders := make([]*domain.Order, 0, len(s.Plan.Legs))
		for i, leg := range s.Plan.Legs {
			sched := s.Schedule.Legs[i]

			amount := 0.0
			if leg.CustomerID != nil {
				amount = s.amounts[*leg.CustomerID]
			}

			orders = append(orders, &domain.Order{
				BatchID:               batchID,
				StoreName:             s.Depot.Name,
				DriverID:              s.Driver.DriverID,
				DriverName:            s.Driver.Name,
				DriverEmail:           s.Driver.Email,
				CustomerID:            leg.CustomerID,
				CustomerName:          leg.CustomerName,
				Status:                domain.OrderPending,
				PaymentConfirmation:   domain.PaymentConfirmation,
				PaymentStatus:         domain.PaymentStatus,
				PaymentMethod:         domain.PaymentMethod,
				Start:                 leg.Origin,
				Destination:           leg.Destination,
				Distance:              leg.DistanceText,
				Time:                  leg.DurationText,
				DeliverySequence:      leg.SequenceIndex,
				TotalAmount:           amount,
				ReturnOption:          s.Plan.ReturnOption,
				CreatedAt:             sched.StartedAt,
				EstimatedDeliveryTime: sched.EstimatedArrival,
			})
		}

		if err := p.orders.CreateOrders(ctx, orders); err != nil {
			return "", fmt.Errorf("confirm: persist orders: %w", err)
		}
		s.persistedBatchID = batchID
	}

	deliveries := s.Plan.DeliveryLegCount()
	notifications := make([]*domain.Notification, 0, deliveries)
	for _, leg := range s.Plan.Legs {
		if leg.IsReturn {
			continue
		}
		notifications = append(notifications, &domain.Notification{
			DriverID: s.Driver.DriverID,
			Title:    "New delivery assigned",
			Body: fmt.Sprintf("Stop %d of %d: deliver to %s at %s",
				leg.SequenceIndex, deliveries, leg.CustomerName, leg.Destination),
		})
	}
	if err := p.notifications.CreateNotifications(ctx, notifications); err != nil {
		return "", fmt.Errorf("confirm: persist notifications: %w", err)
	}

	if err := s.State.Transition(domain.SessionConfirmed); err != nil {
		return "", err
	}

	p.logger.Info("plan confirmed",
		zap.String("batch_id", batchID),
		zap.Int64("driver_id", s.Driver.DriverID),
		zap.Int("legs", len(s.Plan.Legs)),
		zap.String("return_option", string(s.Plan.ReturnOption)),
	)

	p.dropSession(s.ID)
	return batchID, nil
}

// Cancel discards all computed state and ends the session.
func (p *Planner) Cancel(sessionID string) error {
	s, err := p.GetSession(sessionID)
	if err != nil {
		return err
	}
	if err := s.State.Transition(domain.SessionCancelled); err != nil {
		return err
	}
	s.Plan = nil
	s.Schedule = nil
	s.Destinations = nil
	p.dropSession(s.ID)
	return nil
}

func (p *Planner) dropSession(id string) {
	p.mu.Lock()
	delete(p.sessions, id)
	p.mu.Unlock()
}
