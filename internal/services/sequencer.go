package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"

	"go.uber.org/zap"

	"courier-admin-service/internal/domain"
	"courier-admin-service/internal/ports"
)

// Sentinel distance for nearest-depot candidates whose query failed; they
// sort after every resolvable depot instead of aborting the operation.
const unreachableMeters = math.MaxInt32

// Sequencer orders a set of delivery destinations from a depot using the
// greedy nearest-first heuristic: destinations are ranked by their distance
// from the depot, then each consecutive leg is queried independently.
//
// All oracle calls are strictly sequential; each leg's origin is the
// previous leg's destination, so ordering matters.
type Sequencer struct {
	provider ports.DistanceProvider
	stores   ports.StoreRepository
	logger   *zap.Logger
}

func NewSequencer(provider ports.DistanceProvider, stores ports.StoreRepository, logger *zap.Logger) *Sequencer {
	return &Sequencer{provider: provider, stores: stores, logger: logger}
}

// BuildPlan produces an ordered RoutePlan for one planning session.
// Any failed leg query aborts the whole plan; partial routes are never kept.
func (s *Sequencer) BuildPlan(
	ctx context.Context,
	depot domain.Store,
	destinations []domain.Destination,
	returnOption domain.ReturnOption,
) (*domain.RoutePlan, error) {
	if err := depot.Validate(); err != nil {
		return nil, fmt.Errorf("build plan: %w", err)
	}
	if len(destinations) == 0 {
		return nil, errors.New("build plan: at least one destination is required")
	}
	for _, d := range destinations {
		if d.Address == "" {
			return nil, fmt.Errorf("build plan: customer %d has empty selected address", d.CustomerID)
		}
	}

	fromDepot, err := s.legsFromOrigin(ctx, depot.Address, destinations)
	if err != nil {
		return nil, fmt.Errorf("build plan: %w", err)
	}

	// Rank stops by distance from the depot. The sort is stable on purpose:
	// destinations at equal distance keep their original input order.
	order := make([]int, len(destinations))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return fromDepot[order[a]].DistanceValue < fromDepot[order[b]].DistanceValue
	})

	plan := &domain.RoutePlan{
		Depot:        depot,
		ReturnOption: returnOption,
		Legs:         make([]domain.Leg, 0, len(destinations)+1),
	}

	for k, idx := range order {
		dest := destinations[idx]
		var result ports.LegResult
		if k == 0 {
			result = fromDepot[idx]
		} else {
			// The depot batch only measured distance-from-depot; every
			// inter-stop leg needs its own query.
			prev := destinations[order[k-1]]
			result, err = s.provider.GetLeg(ctx, prev.Address, dest.Address)
			if err != nil {
				return nil, fmt.Errorf("build plan: %w", &domain.LegQueryError{
					Origin: prev.Address, Destination: dest.Address, Err: err,
				})
			}
		}

		customerID := dest.CustomerID
		plan.Legs = append(plan.Legs, domain.Leg{
			Destination:   dest.Address,
			CustomerID:    &customerID,
			CustomerName:  dest.CustomerName,
			DistanceText:  result.DistanceText,
			DistanceValue: result.DistanceValue,
			DurationText:  result.DurationText,
			DurationValue: result.DurationValue,
		})
	}

	if returnOption != domain.ReturnNone {
		returnLeg, err := s.returnLeg(ctx, depot, plan.Legs[len(plan.Legs)-1].Destination, returnOption)
		if err != nil {
			return nil, fmt.Errorf("build plan: %w", err)
		}
		plan.Legs = append(plan.Legs, returnLeg)
	}

	plan.Rechain()
	return plan, nil
}

// legsFromOrigin queries origin -> every destination, batched when the
// provider supports it, otherwise one sequential call per destination.
func (s *Sequencer) legsFromOrigin(
	ctx context.Context,
	origin string,
	destinations []domain.Destination,
) ([]ports.LegResult, error) {
	addrs := make([]string, len(destinations))
	for i, d := range destinations {
		addrs[i] = d.Address
	}

	if batch, ok := s.provider.(ports.DistanceBatchProvider); ok {
		results, err := batch.GetLegs(ctx, origin, addrs)
		if err != nil {
			return nil, &domain.LegQueryError{Origin: origin, Destination: "batch", Err: err}
		}
		if len(results) != len(addrs) {
			return nil, fmt.Errorf("batch leg query from %q: got %d results for %d destinations", origin, len(results), len(addrs))
		}
		return results, nil
	}

	results := make([]ports.LegResult, len(addrs))
	for i, a := range addrs {
		r, err := s.provider.GetLeg(ctx, origin, a)
		if err != nil {
			return nil, &domain.LegQueryError{Origin: origin, Destination: a, Err: err}
		}
		results[i] = r
	}
	return results, nil
}

// returnLeg appends the trip back to a depot after the last delivery stop.
func (s *Sequencer) returnLeg(
	ctx context.Context,
	depot domain.Store,
	lastStop string,
	option domain.ReturnOption,
) (domain.Leg, error) {
	if option == domain.ReturnOriginal {
		result, err := s.provider.GetLeg(ctx, lastStop, depot.Address)
		if err != nil {
			return domain.Leg{}, &domain.LegQueryError{Origin: lastStop, Destination: depot.Address, Err: err}
		}
		return returnLegFrom(depot.Address, result, false), nil
	}

	// Nearest-active-depot search. Candidates are queried one at a time;
	// O(N) sequential oracle calls for N active depots.
	actives, err := s.stores.ListActiveStores(ctx)
	if err != nil {
		return domain.Leg{}, fmt.Errorf("return leg: list active stores: %w", err)
	}

	bestMeters := unreachableMeters
	var best *ports.LegResult
	var bestAddr string
	for _, st := range actives {
		result, err := s.provider.GetLeg(ctx, lastStop, st.Address)
		if err != nil {
			// A single unresolvable depot should not sink the whole plan.
			s.logger.Warn("nearest depot query failed",
				zap.String("depot", st.Name),
				zap.Error(err),
			)
			continue
		}
		if result.DistanceValue < bestMeters {
			bestMeters = result.DistanceValue
			r := result
			best = &r
			bestAddr = st.Address
		}
	}

	if best != nil {
		return returnLegFrom(bestAddr, *best, false), nil
	}

	// No active depot resolved; fall back to the original one and mark it.
	result, err := s.provider.GetLeg(ctx, lastStop, depot.Address)
	if err != nil {
		return domain.Leg{}, &domain.LegQueryError{Origin: lastStop, Destination: depot.Address, Err: err}
	}
	return returnLegFrom(depot.Address, result, true), nil
}

func returnLegFrom(depotAddress string, r ports.LegResult, fallback bool) domain.Leg {
	return domain.Leg{
		Destination:   depotAddress,
		CustomerName:  domain.ReturnLegCustomerName,
		DistanceText:  r.DistanceText,
		DistanceValue: r.DistanceValue,
		DurationText:  r.DurationText,
		DurationValue: r.DurationValue,
		IsReturn:      true,
		DepotFallback: fallback,
	}
}
