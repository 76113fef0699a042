package addressbook

import "fmt"

// AddressBook is an in-memory collection of records keyed by contact name.
// At most one record exists per name; re-adding a name overwrites the
// previous record in place. Not safe for concurrent use.
type AddressBook struct {
	records map[string]*Record
	order   []string // names in insertion order
}

// New creates an empty address book.
func New() *AddressBook {
	return &AddressBook{
		records: make(map[string]*Record),
	}
}

// AddRecord inserts the record under its name. An existing record with the
// same name is replaced and keeps its original listing position.
func (b *AddressBook) AddRecord(record *Record) {
	if _, exists := b.records[record.Name]; !exists {
		b.order = append(b.order, record.Name)
	}
	b.records[record.Name] = record
}

// Find returns the record stored under the name.
func (b *AddressBook) Find(name string) (*Record, error) {
	record, ok := b.records[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrContactNotFound, name)
	}
	return record, nil
}

// Delete removes the record stored under the name. Deleting a name that is
// not present fails with ErrContactNotFound, mirroring Find.
func (b *AddressBook) Delete(name string) error {
	if _, ok := b.records[name]; !ok {
		return fmt.Errorf("%w: %s", ErrContactNotFound, name)
	}
	delete(b.records, name)
	for i, n := range b.order {
		if n == name {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
	return nil
}

// All returns the records in insertion order. The slice is a copy and stays
// valid across later mutations of the book.
func (b *AddressBook) All() []*Record {
	records := make([]*Record, 0, len(b.order))
	for _, name := range b.order {
		records = append(records, b.records[name])
	}
	return records
}

// Len returns the number of stored records.
func (b *AddressBook) Len() int {
	return len(b.records)
}
