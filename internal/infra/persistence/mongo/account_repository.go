package mongo

import (
	"context"
	"time"

	"passport/internal/domain/entity"
	"passport/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const accountCollection = "accounts"

// accountRepository implements the domain.AccountRepository interface on a
// MongoDB collection.
type accountRepository struct {
	collection *mongo.Collection
}

// NewAccountRepository is the constructor for accountRepository. It ensures
// the unique index on the normalized email, which is the authoritative
// uniqueness guarantee: the service's check-then-insert sequence is not
// atomic, so duplicate registrations racing past the pre-check are stopped
// here and surfaced as ErrDuplicateEmail.
func NewAccountRepository(db *mongo.Database) (repository.AccountRepository, error) {
	collection := db.Collection(accountCollection)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to ensure unique email index")
	}

	return &accountRepository{collection: collection}, nil
}

// FindByID retrieves a single account by its unique ID.
func (repo *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	return repo.findOne(ctx, bson.M{"_id": id.String()})
}

// FindByEmail retrieves a single account by its normalized email.
func (repo *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	return repo.findOne(ctx, bson.M{"email": email})
}

func (repo *accountRepository) findOne(ctx context.Context, criteria bson.M) (*entity.Account, error) {
	model := new(accountModel)
	if err := repo.collection.FindOne(ctx, criteria).Decode(model); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	return toAccountDomain(model)
}

// Insert persists a new account document.
func (repo *accountRepository) Insert(ctx context.Context, account *entity.Account) error {
	if _, err := repo.collection.InsertOne(ctx, fromAccountDomain(account)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicateEmail
		}

		return errors.Wrap(err, "failed to insert account")
	}

	return nil
}

// UpdateByID applies a partial update, setting only the fields present in the
// update. An empty update never reaches the store.
func (repo *accountRepository) UpdateByID(ctx context.Context, id uuid.UUID, update entity.PartialUpdate) error {
	set := update.SetDocument()
	if len(set) == 0 {
		return nil
	}

	result, err := repo.collection.UpdateOne(ctx, bson.M{"_id": id.String()}, bson.M{"$set": set})
	if err != nil {
		return errors.Wrap(err, "failed to update account")
	}
	if result.MatchedCount == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}
