// Package inmemory keeps the whole shop state in process memory. It backs the
// domain and transport tests and the --in-memory development mode; production
// runs on the mysql package. Both implement the same repository interfaces.
package inmemory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/aeste7/flw/pkg/domain/model"
)

type Store struct {
	mu   sync.Mutex
	txMu sync.Mutex

	flowers      map[int64]model.Flower
	writeoffs    map[int64]model.Writeoff
	notes        map[int64]model.Note
	orders       map[int64]model.Order
	orderItems   map[int64]model.OrderItem
	bouquets     map[int64]model.Bouquet
	bouquetItems map[int64]model.BouquetItem

	nextFlowerID      int64
	nextWriteoffID    int64
	nextNoteID        int64
	nextOrderID       int64
	nextOrderItemID   int64
	nextBouquetID     int64
	nextBouquetItemID int64
}

func NewStore() *Store {
	return &Store{
		flowers:      make(map[int64]model.Flower),
		writeoffs:    make(map[int64]model.Writeoff),
		notes:        make(map[int64]model.Note),
		orders:       make(map[int64]model.Order),
		orderItems:   make(map[int64]model.OrderItem),
		bouquets:     make(map[int64]model.Bouquet),
		bouquetItems: make(map[int64]model.BouquetItem),
	}
}

func (s *Store) Flowers() model.FlowerRepository     { return &flowerRepository{s} }
func (s *Store) Writeoffs() model.WriteoffRepository { return &writeoffRepository{s} }
func (s *Store) Notes() model.NoteRepository         { return &noteRepository{s} }
func (s *Store) Orders() model.OrderRepository       { return &orderRepository{s} }
func (s *Store) Bouquets() model.BouquetRepository   { return &bouquetRepository{s} }

type txKey struct{}

// WithinTx satisfies model.TxManager. The in-memory store has no rollback;
// mutations apply as they happen. That is fine for a test double, where fn
// only fails on programming errors, not on storage faults. A dedicated mutex
// still serializes multi-step mutations so two concurrent transactions cannot
// interleave mid-flight; nested calls join the outer transaction the same way
// the mysql manager does. txMu must stay separate from mu, which repository
// calls take per operation.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(txKey{}) != nil {
		return fn(ctx)
	}
	s.txMu.Lock()
	defer s.txMu.Unlock()
	return fn(context.WithValue(ctx, txKey{}, struct{}{}))
}

type flowerRepository struct{ s *Store }

func (r *flowerRepository) FindAll(ctx context.Context) ([]model.Flower, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	flowers := make([]model.Flower, 0, len(r.s.flowers))
	for _, f := range r.s.flowers {
		flowers = append(flowers, f)
	}
	sort.Slice(flowers, func(i, j int) bool { return flowers[i].ID < flowers[j].ID })
	return flowers, nil
}

func (r *flowerRepository) Find(ctx context.Context, id int64) (*model.Flower, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	f, ok := r.s.flowers[id]
	if !ok {
		return nil, model.ErrFlowerNotFound
	}
	return &f, nil
}

func (r *flowerRepository) FindByName(ctx context.Context, name string) (*model.Flower, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, f := range r.s.flowers {
		if f.Name == name {
			clone := f
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *flowerRepository) Create(ctx context.Context, name string, amount int) (*model.Flower, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.nextFlowerID++
	f := model.Flower{ID: r.s.nextFlowerID, Name: name, Amount: amount, UpdatedAt: time.Now().UTC()}
	r.s.flowers[f.ID] = f
	return &f, nil
}

func (r *flowerRepository) Update(ctx context.Context, id int64, upd model.FlowerUpdate) (*model.Flower, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	f, ok := r.s.flowers[id]
	if !ok {
		return nil, model.ErrFlowerNotFound
	}
	if upd.Name != nil {
		f.Name = *upd.Name
	}
	if upd.Amount != nil {
		f.Amount = *upd.Amount
	}
	f.UpdatedAt = time.Now().UTC()
	r.s.flowers[id] = f
	return &f, nil
}

func (r *flowerRepository) Delete(ctx context.Context, id int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.flowers[id]; !ok {
		return false, nil
	}
	delete(r.s.flowers, id)
	return true, nil
}

type writeoffRepository struct{ s *Store }

func (r *writeoffRepository) FindAll(ctx context.Context) ([]model.Writeoff, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	writeoffs := make([]model.Writeoff, 0, len(r.s.writeoffs))
	for _, w := range r.s.writeoffs {
		writeoffs = append(writeoffs, w)
	}
	sort.Slice(writeoffs, func(i, j int) bool { return writeoffs[i].ID > writeoffs[j].ID })
	return writeoffs, nil
}

func (r *writeoffRepository) Create(ctx context.Context, flower string, amount int) (*model.Writeoff, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.nextWriteoffID++
	w := model.Writeoff{ID: r.s.nextWriteoffID, Flower: flower, Amount: amount, CreatedAt: time.Now().UTC()}
	r.s.writeoffs[w.ID] = w
	return &w, nil
}

func (r *writeoffRepository) DeleteAll(ctx context.Context) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.writeoffs = make(map[int64]model.Writeoff)
	return nil
}

type noteRepository struct{ s *Store }

func (r *noteRepository) FindAll(ctx context.Context) ([]model.Note, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	notes := make([]model.Note, 0, len(r.s.notes))
	for _, n := range r.s.notes {
		notes = append(notes, n)
	}
	sort.Slice(notes, func(i, j int) bool { return notes[i].ID > notes[j].ID })
	return notes, nil
}

func (r *noteRepository) Find(ctx context.Context, id int64) (*model.Note, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	n, ok := r.s.notes[id]
	if !ok {
		return nil, model.ErrNoteNotFound
	}
	return &n, nil
}

func (r *noteRepository) Create(ctx context.Context, title, content string) (*model.Note, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.nextNoteID++
	n := model.Note{ID: r.s.nextNoteID, Title: title, Content: content, UpdatedAt: time.Now().UTC()}
	r.s.notes[n.ID] = n
	return &n, nil
}

func (r *noteRepository) Update(ctx context.Context, id int64, upd model.NoteUpdate) (*model.Note, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	n, ok := r.s.notes[id]
	if !ok {
		return nil, model.ErrNoteNotFound
	}
	if upd.Title != nil {
		n.Title = *upd.Title
	}
	if upd.Content != nil {
		n.Content = *upd.Content
	}
	n.UpdatedAt = time.Now().UTC()
	r.s.notes[id] = n
	return &n, nil
}

func (r *noteRepository) Delete(ctx context.Context, id int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.notes[id]; !ok {
		return false, nil
	}
	delete(r.s.notes, id)
	return true, nil
}

type orderRepository struct{ s *Store }

func (r *orderRepository) FindAll(ctx context.Context) ([]model.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	orders := make([]model.Order, 0, len(r.s.orders))
	for _, o := range r.s.orders {
		orders = append(orders, o)
	}
	sort.Slice(orders, func(i, j int) bool {
		if !orders[i].ScheduledAt.Equal(orders[j].ScheduledAt) {
			return orders[i].ScheduledAt.After(orders[j].ScheduledAt)
		}
		return orders[i].ID > orders[j].ID
	})
	return orders, nil
}

func (r *orderRepository) Find(ctx context.Context, id int64) (*model.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	o, ok := r.s.orders[id]
	if !ok {
		return nil, model.ErrOrderNotFound
	}
	return &o, nil
}

func (r *orderRepository) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.nextOrderID++
	o := *order
	o.ID = r.s.nextOrderID
	r.s.orders[o.ID] = o
	return &o, nil
}

func (r *orderRepository) Update(ctx context.Context, id int64, upd model.OrderUpdate) (*model.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	o, ok := r.s.orders[id]
	if !ok {
		return nil, model.ErrOrderNotFound
	}
	if upd.From != nil {
		o.From = *upd.From
	}
	if upd.To != nil {
		o.To = *upd.To
	}
	if upd.Address != nil {
		o.Address = *upd.Address
	}
	if upd.ScheduledAt != nil {
		o.ScheduledAt = *upd.ScheduledAt
	}
	if upd.TimeFrom != nil {
		o.TimeFrom = upd.TimeFrom
	}
	if upd.TimeTo != nil {
		o.TimeTo = upd.TimeTo
	}
	if upd.Notes != nil {
		o.Notes = upd.Notes
	}
	if upd.Status != nil {
		o.Status = *upd.Status
	}
	if upd.Pickup != nil {
		o.Pickup = *upd.Pickup
	}
	if upd.Showcase != nil {
		o.Showcase = *upd.Showcase
	}
	r.s.orders[id] = o
	return &o, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) (*model.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	o, ok := r.s.orders[id]
	if !ok {
		return nil, model.ErrOrderNotFound
	}
	o.Status = status
	r.s.orders[id] = o
	return &o, nil
}

func (r *orderRepository) FindItems(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	items := make([]model.OrderItem, 0)
	for _, item := range r.s.orderItems {
		if item.OrderID == orderID {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (r *orderRepository) CreateItem(ctx context.Context, orderID int64, item model.LineItem) (*model.OrderItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.nextOrderItemID++
	row := model.OrderItem{ID: r.s.nextOrderItemID, OrderID: orderID, Flower: item.Flower, Amount: item.Amount}
	r.s.orderItems[row.ID] = row
	return &row, nil
}

func (r *orderRepository) DeleteItems(ctx context.Context, orderID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for id, item := range r.s.orderItems {
		if item.OrderID == orderID {
			delete(r.s.orderItems, id)
		}
	}
	return nil
}

type bouquetRepository struct{ s *Store }

func (r *bouquetRepository) FindAll(ctx context.Context) ([]model.Bouquet, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	bouquets := make([]model.Bouquet, 0, len(r.s.bouquets))
	for _, b := range r.s.bouquets {
		bouquets = append(bouquets, b)
	}
	sort.Slice(bouquets, func(i, j int) bool { return bouquets[i].ID > bouquets[j].ID })
	return bouquets, nil
}

func (r *bouquetRepository) Find(ctx context.Context, id int64) (*model.Bouquet, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	b, ok := r.s.bouquets[id]
	if !ok {
		return nil, model.ErrBouquetNotFound
	}
	return &b, nil
}

func (r *bouquetRepository) Create(ctx context.Context, bouquet *model.Bouquet) (*model.Bouquet, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.nextBouquetID++
	b := *bouquet
	b.ID = r.s.nextBouquetID
	r.s.bouquets[b.ID] = b
	return &b, nil
}

func (r *bouquetRepository) Delete(ctx context.Context, id int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.bouquets[id]; !ok {
		return false, nil
	}
	delete(r.s.bouquets, id)
	return true, nil
}

func (r *bouquetRepository) FindItems(ctx context.Context, bouquetID int64) ([]model.BouquetItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	items := make([]model.BouquetItem, 0)
	for _, item := range r.s.bouquetItems {
		if item.BouquetID == bouquetID {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (r *bouquetRepository) CreateItem(ctx context.Context, bouquetID int64, item model.LineItem) (*model.BouquetItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.nextBouquetItemID++
	row := model.BouquetItem{ID: r.s.nextBouquetItemID, BouquetID: bouquetID, Flower: item.Flower, Amount: item.Amount}
	r.s.bouquetItems[row.ID] = row
	return &row, nil
}

func (r *bouquetRepository) DeleteItems(ctx context.Context, bouquetID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for id, item := range r.s.bouquetItems {
		if item.BouquetID == bouquetID {
			delete(r.s.bouquetItems, id)
		}
	}
	return nil
}
