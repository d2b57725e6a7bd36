package dashboard

import (
	"context"
	"gobarber-dashboard/internal/app/contracts"
	"gobarber-dashboard/internal/app/models"
	"gobarber-dashboard/internal/pkg/constvars"
	"gobarber-dashboard/internal/pkg/metrics"
	"sync"
	"time"

	"go.uber.org/zap"
)

// ViewModel is one live dashboard. Operations mutate the selection and run the
// matching fetch effect; the mutex is released while the API is called, and a
// response is only applied if no newer fetch for the same key started since.
type ViewModel struct {
	mu                     sync.Mutex
	state                  State
	providerID             string
	availabilityGeneration uint64
	appointmentsGeneration uint64

	API      contracts.ScheduleAPIClient
	Location *time.Location
	Now      func() time.Time
	Log      *zap.Logger
}

func NewViewModel(api contracts.ScheduleAPIClient, providerID string, location *time.Location, now func() time.Time, logger *zap.Logger) *ViewModel {
	if now == nil {
		now = time.Now
	}
	today := now().In(location)
	return &ViewModel{
		state: State{
			SelectedDate: StartOfDay(today),
			CurrentMonth: StartOfMonth(today),
		},
		providerID: providerID,
		API:        api,
		Location:   location,
		Now:        now,
		Log:        logger,
	}
}

// Restore replaces the selection without fetching.
func (vm *ViewModel) Restore(selection models.DashboardSelection) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	if !selection.SelectedDate.IsZero() {
		vm.state.SelectedDate = StartOfDay(selection.SelectedDate.In(vm.Location))
	}
	if !selection.CurrentMonth.IsZero() {
		vm.state.CurrentMonth = StartOfMonth(selection.CurrentMonth.In(vm.Location))
	}
}

func (vm *ViewModel) Snapshot() State {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	state := vm.state
	state.Appointments = append([]models.Appointment(nil), vm.state.Appointments...)
	state.MonthAvailability = append([]models.MonthAvailabilityItem(nil), vm.state.MonthAvailability...)
	return state
}

func (vm *ViewModel) Selection() models.DashboardSelection {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return models.DashboardSelection{
		SelectedDate: vm.state.SelectedDate,
		CurrentMonth: vm.state.CurrentMonth,
	}
}

func (vm *ViewModel) ProviderID() string {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.providerID
}

func (vm *ViewModel) Derive(locale Locale) View {
	return Derive(vm.Snapshot(), vm.Now(), vm.Location, locale)
}

// SelectDay moves the selection to day when the calendar marks it available
// and not disabled, then fetches that day's appointments. It reports whether
// the selection changed.
func (vm *ViewModel) SelectDay(ctx context.Context, day time.Time, isAvailable, isDisabled bool) (bool, error) {
	if !isAvailable || isDisabled {
		vm.Log.Debug("ViewModel.SelectDay ignored",
			zap.String(constvars.LoggingDayKey, day.Format(constvars.DateLayout)),
			zap.Bool("is_available", isAvailable),
			zap.Bool("is_disabled", isDisabled),
		)
		return false, nil
	}

	vm.mu.Lock()
	vm.state.SelectedDate = StartOfDay(day.In(vm.Location))
	vm.mu.Unlock()

	return true, vm.fetchAppointments(ctx)
}

// ClickDay resolves the calendar modifiers of day against the current state
// and selects it.
func (vm *ViewModel) ClickDay(ctx context.Context, day time.Time) (bool, error) {
	day = StartOfDay(day.In(vm.Location))

	vm.mu.Lock()
	disabled := NewDisabledDays(vm.state.CurrentMonth, vm.state.MonthAvailability)
	vm.mu.Unlock()

	return vm.SelectDay(ctx, day, IsWorkday(day), disabled.Contains(day))
}

// ChangeMonth shows month in the calendar and fetches its availability. Any
// month is accepted.
func (vm *ViewModel) ChangeMonth(ctx context.Context, month time.Time) error {
	vm.mu.Lock()
	vm.state.CurrentMonth = StartOfMonth(month.In(vm.Location))
	vm.mu.Unlock()

	return vm.fetchAvailability(ctx)
}

// SetProvider switches the provider whose availability is shown.
func (vm *ViewModel) SetProvider(ctx context.Context, providerID string) error {
	vm.mu.Lock()
	vm.providerID = providerID
	vm.mu.Unlock()

	return vm.fetchAvailability(ctx)
}

// Mount runs both fetch effects for the current selection. The availability
// error is returned first when both fail.
func (vm *ViewModel) Mount(ctx context.Context) error {
	var (
		wg                               sync.WaitGroup
		availabilityErr, appointmentsErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		availabilityErr = vm.fetchAvailability(ctx)
	}()
	go func() {
		defer wg.Done()
		appointmentsErr = vm.fetchAppointments(ctx)
	}()
	wg.Wait()

	if availabilityErr != nil {
		return availabilityErr
	}
	return appointmentsErr
}

func (vm *ViewModel) Refresh(ctx context.Context) error {
	return vm.Mount(ctx)
}

func (vm *ViewModel) fetchAvailability(ctx context.Context) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	vm.mu.Lock()
	vm.availabilityGeneration++
	generation := vm.availabilityGeneration
	month := vm.state.CurrentMonth
	providerID := vm.providerID
	vm.mu.Unlock()

	items, err := vm.API.FindMonthAvailability(ctx, providerID, month.Year(), month.Month())

	vm.mu.Lock()
	defer vm.mu.Unlock()
	if generation != vm.availabilityGeneration {
		metrics.RecordStaleResponse(constvars.GobarberResourceMonthAvailability)
		vm.Log.Debug("ViewModel.fetchAvailability discarded stale response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Uint64(constvars.LoggingGenerationKey, generation),
		)
		return nil
	}
	if err != nil {
		vm.state.AvailabilityFailed = true
		vm.Log.Error("ViewModel.fetchAvailability error fetching month availability",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingProviderIDKey, providerID),
			zap.Int(constvars.LoggingYearKey, month.Year()),
			zap.Int(constvars.LoggingMonthKey, int(month.Month())),
			zap.Error(err),
		)
		return err
	}

	vm.state.MonthAvailability = items
	vm.state.AvailabilityFailed = false
	return nil
}

func (vm *ViewModel) fetchAppointments(ctx context.Context) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	vm.mu.Lock()
	vm.appointmentsGeneration++
	generation := vm.appointmentsGeneration
	day := vm.state.SelectedDate
	vm.mu.Unlock()

	appointments, err := vm.API.FindMyAppointments(ctx, day)

	vm.mu.Lock()
	defer vm.mu.Unlock()
	if generation != vm.appointmentsGeneration {
		metrics.RecordStaleResponse(constvars.GobarberResourceAppointments)
		vm.Log.Debug("ViewModel.fetchAppointments discarded stale response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Uint64(constvars.LoggingGenerationKey, generation),
		)
		return nil
	}
	if err != nil {
		vm.state.AppointmentsFailed = true
		vm.Log.Error("ViewModel.fetchAppointments error fetching appointments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDayKey, day.Format(constvars.DateLayout)),
			zap.Error(err),
		)
		return err
	}

	for i := range appointments {
		appointments[i].HourFormatted = appointments[i].Date.In(vm.Location).Format(constvars.HourLayout)
	}
	vm.state.Appointments = appointments
	vm.state.AppointmentsFailed = false
	return nil
}
