package mongo

import (
	"time"

	"passport/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// accountModel is the persistence shape of an account document. The entity's
// uuid is stored as the string _id so criteria documents stay trivial.
type accountModel struct {
	ID              string            `bson:"_id"`
	Email           string            `bson:"email"`
	PasswordHash    string            `bson:"passwordHash"`
	FirstName       string            `bson:"firstName"`
	LastName        string            `bson:"lastName"`
	Status          string            `bson:"status"`
	Expiration      time.Time         `bson:"expiration"`
	CreatedDate     time.Time         `bson:"createdDate"`
	ResetCode       string            `bson:"resetCode,omitempty"`
	Avatar          string            `bson:"avatar,omitempty"`
	DefaultLocation string            `bson:"defaultLocation"`
	SessionID       string            `bson:"sessionId"`
	BillingLink     *billingLinkModel `bson:"billingLink,omitempty"`
}

type billingLinkModel struct {
	CustomerID         string `bson:"customerId"`
	ProductID          string `bson:"productId,omitempty"`
	SubscriptionID     string `bson:"subscriptionId,omitempty"`
	SubscriptionStatus string `bson:"subscriptionStatus,omitempty"`
	SubscriptionType   string `bson:"subscriptionType,omitempty"`
}

// fromAccountDomain maps a domain entity to its persistence model.
func fromAccountDomain(account *entity.Account) *accountModel {
	model := &accountModel{
		ID:              account.ID.String(),
		Email:           account.Email,
		PasswordHash:    account.PasswordHash,
		FirstName:       account.FirstName,
		LastName:        account.LastName,
		Status:          account.Status.String(),
		Expiration:      account.Expiration,
		CreatedDate:     account.CreatedDate,
		ResetCode:       account.ResetCode,
		Avatar:          account.Avatar,
		DefaultLocation: account.DefaultLocation,
		SessionID:       account.SessionID,
	}

	if account.BillingLink != nil {
		model.BillingLink = &billingLinkModel{
			CustomerID:         account.BillingLink.CustomerID,
			ProductID:          account.BillingLink.ProductID,
			SubscriptionID:     account.BillingLink.SubscriptionID,
			SubscriptionStatus: account.BillingLink.SubscriptionStatus,
			SubscriptionType:   account.BillingLink.SubscriptionType,
		}
	}

	return model
}

// toAccountDomain maps a persistence model back to a pure domain entity.
func toAccountDomain(model *accountModel) (*entity.Account, error) {
	id, err := uuid.Parse(model.ID)
	if err != nil {
		return nil, errors.Wrap(err, "malformed account id in store")
	}

	account := &entity.Account{
		ID:              id,
		Email:           model.Email,
		PasswordHash:    model.PasswordHash,
		FirstName:       model.FirstName,
		LastName:        model.LastName,
		Status:          entity.Status(model.Status),
		Expiration:      model.Expiration,
		CreatedDate:     model.CreatedDate,
		ResetCode:       model.ResetCode,
		Avatar:          model.Avatar,
		DefaultLocation: model.DefaultLocation,
		SessionID:       model.SessionID,
	}

	if model.BillingLink != nil {
		account.BillingLink = &entity.BillingLink{
			CustomerID:         model.BillingLink.CustomerID,
			ProductID:          model.BillingLink.ProductID,
			SubscriptionID:     model.BillingLink.SubscriptionID,
			SubscriptionStatus: model.BillingLink.SubscriptionStatus,
			SubscriptionType:   model.BillingLink.SubscriptionType,
		}
	}

	return account, nil
}
