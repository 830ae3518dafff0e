package harvest

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetInvoices(t *testing.T) {
	api := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/invoices", r.URL.Path)
		w.Write([]byte(`[
			{"invoice":{"id":55,"client_id":23445,"number":"2017-014","state":"partial","amount":2400}},
			{"invoice":{"id":56,"client_id":23445,"state":"draft"}}
		]`))
	}))

	invoices, err := api.GetInvoices(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, invoices, 2)
	assert.Equal(t, int64(55), invoices[0].ID)
	require.NotNil(t, invoices[0].Amount)
	assert.Equal(t, 2400.0, *invoices[0].Amount)
	assert.Nil(t, invoices[1].Amount)
}

func TestGetInvoicesFiltered(t *testing.T) {
	var rawQuery string
	api := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawQuery = r.URL.RawQuery
		w.Write([]byte(`[]`))
	}))

	_, err := api.GetInvoices(context.Background(), &InvoiceListOptions{Status: "partial", ClientID: 23445})
	require.NoError(t, err)
	assert.Equal(t, "access_token=token123&client=23445&status=partial", rawQuery)
}

func TestGetInvoice(t *testing.T) {
	api := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/invoices/55", r.URL.Path)
		w.Write([]byte(`{"invoice":{"id":55,"client_id":23445,"issued_at":"2017-03-31","due_at":"2017-04-30","state":"open"}}`))
	}))

	inv, err := api.GetInvoice(context.Background(), 55)
	require.NoError(t, err)
	require.NotNil(t, inv.IssuedAt)
	assert.Equal(t, "2017-03-31", inv.IssuedAt.String())
	require.NotNil(t, inv.DueAt)
	assert.Equal(t, "2017-04-30", inv.DueAt.String())
}

func TestCreateInvoice(t *testing.T) {
	var body string
	api := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		body = string(data)
		w.Write([]byte(`{"invoice":{"id":57,"client_id":23445}}`))
	}))

	issued := NewDate(2017, time.March, 31)
	inv, err := api.CreateInvoice(context.Background(), &InvoiceParams{
		ClientID: 23445,
		Subject:  String("March retainer"),
		IssuedAt: &issued,
		Kind:     String("free_form"),
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"invoice":{"client_id":23445,"subject":"March retainer","issued_at":"2017-03-31","kind":"free_form"}}`, body)
	assert.Equal(t, int64(57), inv.ID)
}

func TestMarkInvoiceSent(t *testing.T) {
	var method, path, body string
	api := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		path = r.URL.Path
		data, _ := io.ReadAll(r.Body)
		body = string(data)
		w.Write([]byte("Invoice 55 marked as sent"))
	}))

	out, err := api.MarkInvoiceSent(context.Background(), 55, "Sent by post")
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, method)
	assert.Equal(t, "/invoices/55/messages/mark_as_sent", path)
	assert.JSONEq(t, `{"invoice_message":{"body":"Sent by post"}}`, body)
	assert.Equal(t, "Invoice 55 marked as sent", out)
}

func TestReopenInvoice(t *testing.T) {
	var path string
	api := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		w.Write([]byte("OK"))
	}))

	_, err := api.ReopenInvoice(context.Background(), 55, "")
	require.NoError(t, err)
	assert.Equal(t, "/invoices/55/messages/re_open", path)
}

func TestCreateInvoiceMessage(t *testing.T) {
	var path, body string
	api := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		data, _ := io.ReadAll(r.Body)
		body = string(data)
		w.Write([]byte(`{"invoice_message":{"id":8,"invoice_id":55,"full_recipient_list":"billing@acme.test"}}`))
	}))

	msg, err := api.CreateInvoiceMessage(context.Background(), 55, &InvoiceMessageParams{
		Recipients: "billing@acme.test",
		Body:       String("Please find attached."),
		AttachPDF:  Bool(true),
	})
	require.NoError(t, err)
	assert.Equal(t, "/invoices/55/messages", path)
	assert.JSONEq(t, `{"invoice_message":{"recipients":"billing@acme.test","body":"Please find attached.","attach_pdf":true}}`, body)
	require.NotNil(t, msg.Recipients)
	assert.Equal(t, "billing@acme.test", *msg.Recipients)
}

func TestGetInvoiceCategories(t *testing.T) {
	api := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/invoice_item_categories", r.URL.Path)
		w.Write([]byte(`[
			{"invoice_category":{"id":1,"name":"Service","use_as_service":true}},
			{"invoice_category":{"id":2,"name":"Expense","use_as_expense":true}}
		]`))
	}))

	cats, err := api.GetInvoiceCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, cats, 2)
	assert.Equal(t, "Service", cats[0].Name)
}

func TestCreatePayment(t *testing.T) {
	var path, body string
	api := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		data, _ := io.ReadAll(r.Body)
		body = string(data)
		w.Write([]byte(`{"payment":{"id":77,"invoice_id":55,"amount":1200.5,"paid_at":"2017-04-01T10:00:00Z"}}`))
	}))

	p, err := api.CreatePayment(context.Background(), 55, &PaymentParams{
		Amount: 1200.5,
		PaidAt: time.Date(2017, time.April, 1, 10, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, "/invoices/55/payments", path)
	assert.JSONEq(t, `{"payment":{"amount":1200.5,"paid_at":"2017-04-01T10:00:00Z"}}`, body)
	assert.Equal(t, 1200.5, p.Amount)
}

func TestGetPaymentRequiredFields(t *testing.T) {
	api := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"payment":{"id":77,"invoice_id":55,"amount":1200.5}}`))
	}))

	_, err := api.GetPayment(context.Background(), 55, 77)
	var derr *DecodeError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, "paid_at", derr.Field)
}
