// database/memstore.go
package database

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bhavesh0907/organization-management-service-backend/models"
)

// MemStore is an in-memory implementation of the store operations, used by
// tests. It mirrors the Store's semantics: unique organization names,
// idempotent collection provisioning, clone-with-fresh-identity migration.
type MemStore struct {
	mu          sync.Mutex
	orgs        map[primitive.ObjectID]*models.Organization
	admins      map[primitive.ObjectID]*models.Admin
	collections map[string][]map[string]interface{}
}

func NewMemStore() *MemStore {
	return &MemStore{
		orgs:        make(map[primitive.ObjectID]*models.Organization),
		admins:      make(map[primitive.ObjectID]*models.Admin),
		collections: make(map[string][]map[string]interface{}),
	}
}

func (m *MemStore) FindOrgByName(_ context.Context, name string) (*models.Organization, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, org := range m.orgs {
		if org.Name == name {
			cp := *org
			return &cp, nil
		}
	}
	return nil, ErrOrgNotFound
}

func (m *MemStore) FindOrgByID(_ context.Context, id primitive.ObjectID) (*models.Organization, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	org, ok := m.orgs[id]
	if !ok {
		return nil, ErrOrgNotFound
	}
	cp := *org
	return &cp, nil
}

func (m *MemStore) InsertOrg(_ context.Context, org *models.Organization) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.orgs {
		if existing.Name == org.Name {
			return ErrNameTaken
		}
	}
	cp := *org
	m.orgs[org.ID] = &cp
	return nil
}

func (m *MemStore) RenameOrg(_ context.Context, id primitive.ObjectID, name, collectionName string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	org, ok := m.orgs[id]
	if !ok {
		return ErrOrgNotFound
	}
	for otherID, other := range m.orgs {
		if otherID != id && other.Name == name {
			return ErrNameTaken
		}
	}
	org.Name = name
	org.CollectionName = collectionName
	return nil
}

func (m *MemStore) DeleteOrg(_ context.Context, id primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.orgs, id)
	return nil
}

func (m *MemStore) FindAdminByEmail(_ context.Context, email string) (*models.Admin, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, admin := range m.admins {
		if admin.Email == email {
			cp := *admin
			return &cp, nil
		}
	}
	return nil, ErrAdminNotFound
}

func (m *MemStore) FindAdminByID(_ context.Context, id primitive.ObjectID) (*models.Admin, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	admin, ok := m.admins[id]
	if !ok {
		return nil, ErrAdminNotFound
	}
	cp := *admin
	return &cp, nil
}

func (m *MemStore) FindAdminByOrg(_ context.Context, orgID primitive.ObjectID) (*models.Admin, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, admin := range m.admins {
		if admin.OrgID == orgID {
			cp := *admin
			return &cp, nil
		}
	}
	return nil, ErrAdminNotFound
}

func (m *MemStore) InsertAdmin(_ context.Context, admin *models.Admin) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *admin
	m.admins[admin.ID] = &cp
	return nil
}

func (m *MemStore) UpdateAdminCredentialsByOrg(_ context.Context, orgID primitive.ObjectID, email, passwordHash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, admin := range m.admins {
		if admin.OrgID == orgID {
			admin.Email = email
			admin.PasswordHash = passwordHash
		}
	}
	return nil
}

func (m *MemStore) DeleteAdminsByOrg(_ context.Context, orgID primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, admin := range m.admins {
		if admin.OrgID == orgID {
			delete(m.admins, id)
		}
	}
	return nil
}

func (m *MemStore) EnsureCollection(_ context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.collections[name]; !ok {
		m.collections[name] = nil
	}
	return nil
}

func (m *MemStore) CloneCollection(_ context.Context, src, dst string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	docs := m.collections[src]
	cloned := make([]map[string]interface{}, 0, len(docs))
	for _, doc := range docs {
		cp := make(map[string]interface{}, len(doc))
		for k, v := range doc {
			if k == "_id" {
				continue
			}
			cp[k] = v
		}
		cp["_id"] = primitive.NewObjectID()
		cloned = append(cloned, cp)
	}
	m.collections[dst] = cloned
	return nil
}

func (m *MemStore) DropCollection(_ context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.collections, name)
	return nil
}

// Test helpers.

func (m *MemStore) HasCollection(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.collections[name]
	return ok
}

func (m *MemStore) CollectionDocs(name string) []map[string]interface{} {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]map[string]interface{}(nil), m.collections[name]...)
}

func (m *MemStore) AddDocument(collection string, doc map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make(map[string]interface{}, len(doc)+1)
	for k, v := range doc {
		cp[k] = v
	}
	if _, ok := cp["_id"]; !ok {
		cp["_id"] = primitive.NewObjectID()
	}
	m.collections[collection] = append(m.collections[collection], cp)
}
