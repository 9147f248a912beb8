package friends

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"friends-directory/internal/domain/addresses"
	"friends-directory/internal/domain/pets"
	"friends-directory/internal/domain/quotes"
	"friends-directory/internal/domain/validation"
	"friends-directory/internal/platform/logger"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -------------------------
// Test doubles (in-memory)
// -------------------------

type testRepo struct {
	byID map[string]Friend

	// afterList corre después de leer, antes de devolver (simula escrituras concurrentes).
	afterList func()
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Friend{}}
}

func (r *testRepo) Create(ctx context.Context, f Friend) error {
	r.byID[f.ID] = f
	return nil
}

func (r *testRepo) Update(ctx context.Context, f Friend) error {
	if _, ok := r.byID[f.ID]; !ok {
		return ErrNotFound
	}
	r.byID[f.ID] = f
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Friend, error) {
	f, ok := r.byID[id]
	if !ok {
		return Friend{}, ErrNotFound
	}
	return f, nil
}

func (r *testRepo) List(ctx context.Context, filter ListFilter) ([]Friend, error) {
	out := make([]Friend, 0, len(r.byID))
	for _, f := range r.byID {
		if !filter.IncludeSeeded && f.Seeded {
			continue
		}
		out = append(out, f)
	}
	if r.afterList != nil {
		r.afterList()
	}
	return out, nil
}

type testAddresses map[string]addresses.Address

func (a testAddresses) GetByID(ctx context.Context, id string) (addresses.Address, error) {
	addr, ok := a[id]
	if !ok {
		return addresses.Address{}, addresses.ErrNotFound
	}
	return addr, nil
}

func (a testAddresses) List(ctx context.Context) ([]addresses.Address, error) {
	out := make([]addresses.Address, 0, len(a))
	for _, addr := range a {
		out = append(out, addr)
	}
	return out, nil
}

type testPets map[string][]pets.Pet

func (p testPets) ListByFriend(ctx context.Context, friendID string, includeDeleted bool) ([]pets.Pet, error) {
	var out []pets.Pet
	for _, pet := range p[friendID] {
		if pet.Deleted() && !includeDeleted {
			continue
		}
		out = append(out, pet)
	}
	return out, nil
}

type testQuotes map[string][]quotes.Quote

func (q testQuotes) ListByFriend(ctx context.Context, friendID string, includeDeleted bool) ([]quotes.Quote, error) {
	var out []quotes.Quote
	for _, quote := range q[friendID] {
		if quote.DeletedAt != nil && !includeDeleted {
			continue
		}
		out = append(out, quote)
	}
	return out, nil
}

type testCache struct {
	data        map[string]map[string][]Friend
	gen         int64
	gets        int
	invalidated int
	err         error
}

func newTestCache() *testCache {
	return &testCache{data: map[string]map[string][]Friend{}}
}

func (c *testCache) Generation(ctx context.Context) (int64, error) {
	return c.gen, c.err
}

func (c *testCache) Get(ctx context.Context, key string) (map[string][]Friend, bool, error) {
	c.gets++
	if c.err != nil {
		return nil, false, c.err
	}
	g, ok := c.data[key]
	return g, ok, nil
}

func (c *testCache) Set(ctx context.Context, key string, groups map[string][]Friend) error {
	if c.err != nil {
		return c.err
	}
	c.data[key] = groups
	return nil
}

// Igual que redis: solo avanza la generación, no borra claves.
func (c *testCache) Invalidate(ctx context.Context) error {
	if c.err != nil {
		return c.err
	}
	c.invalidated++
	c.gen++
	return nil
}

type logEntry struct {
	level  string
	msg    string
	fields map[string]any
}

type testLogger struct {
	entries *[]logEntry
}

func newTestLogger() testLogger {
	return testLogger{entries: &[]logEntry{}}
}

func (l testLogger) With(map[string]any) logger.Logger { return l }
func (l testLogger) Debug(msg string, f map[string]any) { l.add("debug", msg, f) }
func (l testLogger) Info(msg string, f map[string]any) { l.add("info", msg, f) }
func (l testLogger) Warn(msg string, f map[string]any) { l.add("warn", msg, f) }
func (l testLogger) Error(msg string, f map[string]any) { l.add("error", msg, f) }

func (l testLogger) add(level, msg string, f map[string]any) {
	*l.entries = append(*l.entries, logEntry{level: level, msg: msg, fields: f})
}

func (l testLogger) warnings() []string {
	var out []string
	for _, e := range *l.entries {
		if e.level == "warn" {
			out = append(out, e.msg)
		}
	}
	return out
}

type fixture struct {
	svc    *Service
	repo   *testRepo
	addrs  testAddresses
	pets   testPets
	quotes testQuotes
	now    time.Time
}

func newFixture(opts ...Option) *fixture {
	f := &fixture{
		repo:   newTestRepo(),
		addrs:  testAddresses{},
		pets:   testPets{},
		quotes: testQuotes{},
		now:    time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	f.svc = NewService(f.repo, f.addrs, f.pets, f.quotes, opts...)
	f.svc.now = func() time.Time { return f.now }
	return f
}

func (f *fixture) address(country string) string {
	id := uuid.NewString()
	f.addrs[id] = addresses.Address{ID: id, StreetAddress: "1 Main", City: "Town", Country: country}
	return id
}

func ptr[T any](v T) *T { return &v }

// -------------------------
// Tests
// -------------------------

func TestCreateFriend_RoundTrip(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	bd := time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC)
	addrID := f.address("Chile")

	created, err := f.svc.CreateFriend(ctx, Input{
		FirstName: "  Pablo ",
		LastName:  "Neruda",
		Email:     "pablo@example.com",
		Birthday:  &bd,
		AddressID: &addrID,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Pablo", created.FirstName)
	assert.Equal(t, f.now, created.CreatedAt)

	got, err := f.svc.ReadFriend(ctx, created.ID, false)
	require.NoError(t, err)
	assert.Equal(t, "Pablo", got.FirstName)
	assert.Equal(t, "Neruda", got.LastName)
	assert.Equal(t, "pablo@example.com", got.Email)
	require.NotNil(t, got.Birthday)
	assert.True(t, got.Birthday.Equal(bd))
	require.NotNil(t, got.Address)
	assert.Equal(t, "Chile", got.Country())
}

func TestCreateFriend_ValidationErrors(t *testing.T) {
	f := newFixture()
	future := f.now.Add(24 * time.Hour)

	_, err := f.svc.CreateFriend(context.Background(), Input{
		FirstName: " ",
		LastName:  "Doe",
		Email:     "nope",
		Birthday:  &future,
		AddressID: ptr(uuid.NewString()),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))

	fields := validation.FieldsOf(err)
	assert.Equal(t, "First name is required.", fields["FirstName"])
	assert.Equal(t, "Email must be a valid email address.", fields["Email"])
	assert.Equal(t, "Birthday must be in the past.", fields["Birthday"])
	assert.Equal(t, "Address does not exist.", fields["AddressID"])
	assert.NotContains(t, fields, "LastName")
	assert.Empty(t, f.repo.byID)
}

func TestValidate_Boundaries(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	base := Input{FirstName: "A", LastName: "B", Email: "a@b.co"}

	in := base
	in.Birthday = ptr(time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC))
	assert.Empty(t, Validate(in, now))

	in.Birthday = ptr(time.Date(1899, 12, 31, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "Birthday must be after 1900.", Validate(in, now)["Birthday"])

	in = base
	in.FirstName = strings.Repeat("a", 101)
	assert.Equal(t, "First name cannot exceed 100 characters.", Validate(in, now)["FirstName"])

	in = base
	in.Email = strings.Repeat("a", 251) + "@b.co"
	assert.Equal(t, "Email cannot exceed 255 characters.", Validate(in, now)["Email"])
}

func TestUpdateFriend_NotFound(t *testing.T) {
	f := newFixture()

	_, err := f.svc.UpdateFriend(context.Background(), Input{
		ID: uuid.NewString(), FirstName: "A", LastName: "B", Email: "a@b.co",
	})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = f.svc.UpdateFriend(context.Background(), Input{
		ID: "not-a-uuid", FirstName: "A", LastName: "B", Email: "a@b.co",
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReadFriend_DanglingAddressAndDeletedDependents(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	created, err := f.svc.CreateFriend(ctx, Input{FirstName: "A", LastName: "B", Email: "a@b.co"})
	require.NoError(t, err)

	// referencia a una dirección que ya no existe
	stored := f.repo.byID[created.ID]
	stored.AddressID = ptr(uuid.NewString())
	f.repo.byID[created.ID] = stored

	deletedAt := f.now
	f.pets[created.ID] = []pets.Pet{
		{ID: "p1", FriendID: created.ID, Name: "Rex"},
		{ID: "p2", FriendID: created.ID, Name: "Old", DeletedAt: &deletedAt},
	}

	got, err := f.svc.ReadFriend(ctx, created.ID, false)
	require.NoError(t, err)
	assert.Nil(t, got.Address)
	assert.Equal(t, UnknownCountry, got.Country())
	assert.Len(t, got.Pets, 1)

	got, err = f.svc.ReadFriend(ctx, created.ID, true)
	require.NoError(t, err)
	assert.Len(t, got.Pets, 2)
}

func TestReadFriendsByCountry_GroupsAndSorts(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	spain := f.address("Spain")
	chile := f.address("Chile")

	for _, in := range []Input{
		{FirstName: "luis", LastName: "zamora", AddressID: &spain},
		{FirstName: "Ana", LastName: "Alvarez", AddressID: &spain},
		{FirstName: "Bea", LastName: "alvarez", AddressID: &spain},
		{FirstName: "Pablo", LastName: "Neruda", AddressID: &chile},
		{FirstName: "Nadie", LastName: "Sabe"},
		{FirstName: "Demo", LastName: "Seed", AddressID: &chile, Seeded: true},
	} {
		in.Email = "x@example.com"
		_, err := f.svc.CreateFriend(ctx, in)
		require.NoError(t, err)
	}

	names := func(groups map[string][]Friend) map[string][]string {
		out := map[string][]string{}
		for country, items := range groups {
			for _, fr := range items {
				out[country] = append(out[country], fr.FullName())
			}
		}
		return out
	}

	groups, err := f.svc.ReadFriendsByCountry(ctx, false, false)
	require.NoError(t, err)
	want := map[string][]string{
		"Spain":        {"Ana Alvarez", "Bea alvarez", "luis zamora"},
		"Chile":        {"Pablo Neruda"},
		UnknownCountry: {"Nadie Sabe"},
	}
	if diff := cmp.Diff(want, names(groups)); diff != "" {
		t.Fatalf("groups mismatch (-want +got):\n%s", diff)
	}

	groups, err = f.svc.ReadFriendsByCountry(ctx, true, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"Pablo Neruda", "Demo Seed"}, names(groups)["Chile"])
}

func TestReadFriendsByCountry_UsesAndInvalidatesCache(t *testing.T) {
	c := newTestCache()
	f := newFixture(WithOverviewCache(c))
	ctx := context.Background()

	_, err := f.svc.CreateFriend(ctx, Input{FirstName: "A", LastName: "B", Email: "a@b.co"})
	require.NoError(t, err)
	assert.Equal(t, 1, c.invalidated)

	first, err := f.svc.ReadFriendsByCountry(ctx, true, false)
	require.NoError(t, err)
	require.Contains(t, c.data, "gen=1:seeds=true:deleted=false")

	// el repo cambia por fuera; el cache sigue respondiendo lo anterior
	f.repo.byID["x"] = Friend{ID: "x", FirstName: "Z", LastName: "Z"}
	cached, err := f.svc.ReadFriendsByCountry(ctx, true, false)
	require.NoError(t, err)
	assert.Equal(t, len(first[UnknownCountry]), len(cached[UnknownCountry]))

	_, err = f.svc.CreateFriend(ctx, Input{FirstName: "C", LastName: "D", Email: "c@d.co"})
	require.NoError(t, err)
	assert.Equal(t, 2, c.invalidated)

	fresh, err := f.svc.ReadFriendsByCountry(ctx, true, false)
	require.NoError(t, err)
	assert.Len(t, fresh[UnknownCountry], 3)
}

func TestReadFriendsByCountry_WriteDuringReadIsNotCached(t *testing.T) {
	c := newTestCache()
	f := newFixture(WithOverviewCache(c))
	ctx := context.Background()

	created, err := f.svc.CreateFriend(ctx, Input{FirstName: "Ada", LastName: "Old", Email: "ada@example.com"})
	require.NoError(t, err)

	// Una escritura confirma entre la lectura del repo y el Set del cache.
	f.repo.afterList = func() {
		f.repo.afterList = nil
		in := InputFrom(created)
		in.LastName = "New"
		_, err := f.svc.UpdateFriend(ctx, in)
		require.NoError(t, err)
	}

	_, err = f.svc.ReadFriendsByCountry(ctx, true, false)
	require.NoError(t, err)

	groups, err := f.svc.ReadFriendsByCountry(ctx, true, false)
	require.NoError(t, err)
	require.Len(t, groups[UnknownCountry], 1)
	assert.Equal(t, "New", groups[UnknownCountry][0].LastName)
}

func TestCacheFailuresAreLoggedAndBypassed(t *testing.T) {
	c := newTestCache()
	c.err = errors.New("redis down")
	log := newTestLogger()
	f := newFixture(WithOverviewCache(c), WithLogger(log))
	ctx := context.Background()

	_, err := f.svc.CreateFriend(ctx, Input{FirstName: "A", LastName: "B", Email: "a@b.co"})
	require.NoError(t, err)

	groups, err := f.svc.ReadFriendsByCountry(ctx, true, false)
	require.NoError(t, err)
	assert.Len(t, groups[UnknownCountry], 1)

	assert.Equal(t, []string{
		"overview cache invalidate failed",
		"overview cache generation failed",
	}, log.warnings())

	// la generación responde pero get/set fallan
	c.err = nil
	c.gen = 5
	f.svc.cache = getSetFailing{c}
	_, err = f.svc.ReadFriendsByCountry(ctx, true, false)
	require.NoError(t, err)
	assert.Contains(t, log.warnings(), "overview cache get failed")
	assert.Contains(t, log.warnings(), "overview cache set failed")
}

type getSetFailing struct{ *testCache }

func (getSetFailing) Get(context.Context, string) (map[string][]Friend, bool, error) {
	return nil, false, errors.New("get failed")
}

func (getSetFailing) Set(context.Context, string, map[string][]Friend) error {
	return errors.New("set failed")
}

func TestExists(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	created, err := f.svc.CreateFriend(ctx, Input{FirstName: "A", LastName: "B", Email: "a@b.co"})
	require.NoError(t, err)

	ok, err := f.svc.Exists(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = f.svc.Exists(ctx, uuid.NewString())
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = f.svc.Exists(ctx, "bad")
	require.NoError(t, err)
	assert.False(t, ok)
}
