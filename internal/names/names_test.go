package names

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cmmoran/pibxgen/internal/model"
)

func TestCasing(ttt *testing.T) {
	tests := []struct {
		raw       string
		camel     string
		attribute string
	}{
		{raw: "title", camel: "Title", attribute: "title"},
		{raw: "first-name", camel: "FirstName", attribute: "firstName"},
		{raw: "order_id", camel: "OrderId", attribute: "orderId"},
		{raw: "shipTo", camel: "ShipTo", attribute: "shipTo"},
		{raw: "a.b c", camel: "ABC", attribute: "aBC"},
		{raw: "", camel: "", attribute: ""},
	}
	for _, tt := range tests {
		ttt.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.camel, CamelCasedNameFor(tt.raw))
			assert.Equal(t, tt.attribute, AttributeNameFor(tt.raw))
		})
	}
}

func TestClassNameFor(t *testing.T) {
	assert.Equal(t, "PurchaseOrder", ClassNameFor("purchase-order"))
	assert.Equal(t, "Address", ClassNameFor("tns:address"))
}

func TestAccessorNames(t *testing.T) {
	attr := model.NewTypeAttribute("first-name", "string")
	assert.Equal(t, "setFirstName", SetterNameFor(attr))
	assert.Equal(t, "getFirstName", GetterNameFor(attr))
	assert.Equal(t, "firstName", MemberNameFor(attr))

	structure := model.NewStructure("payment", model.StructureChoice)
	card := model.NewStructureElement("card", "string")
	structure.Add(card)
	assert.Equal(t, "setPaymentCard", SetterNameFor(card))
	assert.Equal(t, "getPaymentCard", GetterNameFor(card))
	assert.Equal(t, "isPaymentCard", PredicateNameFor(card))
	assert.Equal(t, "paymentCard", MemberNameFor(card))
	assert.Equal(t, "paymentSelect", SelectorNameFor(structure))

	standalone := model.NewCollectionItem("author", "string")
	assert.Equal(t, "setAuthorList", SetterNameFor(standalone))
	assert.Equal(t, "authorList", MemberNameFor(standalone))

	nested := model.NewCollectionItem("author", "string")
	model.NewCollection("authors").Add(nested)
	assert.Equal(t, "setAuthor", SetterNameFor(nested))
}

func TestChoiceConstants(t *testing.T) {
	structure := model.NewStructure("payment", model.StructureChoice).Add(
		model.NewStructureElement("card", "string"),
		model.NewTypeAttribute("ignored", "string"),
		model.NewStructureElement("bank-transfer", "string"),
	)
	assert.Equal(t, []string{"PAYMENT_CARD_CHOICE", "PAYMENT_BANK_TRANSFER_CHOICE"}, ChoiceConstantsFor(structure))
	assert.Equal(t, "PAYMENT_CARD_CHOICE", ChoiceConstantFor(structure.Child(0)))
}

func TestSingularFor(t *testing.T) {
	assert.Equal(t, "item", SingularFor("items"))
	assert.Equal(t, "author", SingularFor("authors"))
	assert.Equal(t, "authorItem", SingularFor("author"))
}

func TestServiceDelegates(t *testing.T) {
	var s Service
	n := model.NewTypeAttribute("zip-code", "string")
	assert.Equal(t, SetterNameFor(n), s.SetterNameFor(n))
	assert.Equal(t, ClassNameFor("zip-code"), s.ClassNameFor("zip-code"))
}
