package repository

const (
	selectRegularPayment = `SELECT
		id,
		pib,
		ipn,
		iban,
		mfo,
		edrpou,
		beneficiary_name,
		debit_period,
		payment_amount,
		created_at,
		updated_at
	FROM regular_payment`

	selectEntry = `SELECT
		id,
		regular_payment_id,
		date_of_payment,
		amount,
		status
	FROM entries_payment`
)

var regularPaymentColumns = []string{
	"id",
	"pib",
	"ipn",
	"iban",
	"mfo",
	"edrpou",
	"beneficiary_name",
	"debit_period",
	"payment_amount",
	"created_at",
	"updated_at",
}
