package service

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

var snapClient snap.Client

// InitMidtrans wires the Snap client once at boot. Sandbox only for now;
// flip to midtrans.Production when the merchant account goes live.
func InitMidtrans(serverKey string) {
	if serverKey == "" {
		log.Println("[MIDTRANS] ⚠️ server key is empty, payment endpoints will fail")
	}
	snapClient.New(serverKey, midtrans.Sandbox)
	log.Println("[MIDTRANS] ✅ Snap client initialized (sandbox)")
}

// NewFeeOrderID builds a collision-safe order id for Midtrans.
func NewFeeOrderID(feeID uuid.UUID) string {
	short := strings.Split(feeID.String(), "-")[0]
	return fmt.Sprintf("FEE-%s-%d", short, time.Now().Unix())
}

// GenerateSnapToken creates a Snap transaction for a fee payment and returns
// the token plus the hosted payment page URL.
func GenerateSnapToken(orderID string, amount int64, payerName, payerEmail string) (token, redirectURL string, err error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: amount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: payerName,
			Email: payerEmail,
		},
	}

	resp, snapErr := snapClient.CreateTransaction(req)
	if snapErr != nil {
		log.Printf("[MIDTRANS] ❌ CreateTransaction failed for %s: %v", orderID, snapErr)
		return "", "", fmt.Errorf("midtrans: %w", snapErr)
	}

	log.Printf("[MIDTRANS] ✅ Snap token issued for %s", orderID)
	return resp.Token, resp.RedirectURL, nil
}
