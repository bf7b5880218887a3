package main

import (
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/iliyamo/event-ticketing/internal/queue"
)

// The consumer runs as its own process so the API server stays up when
// the broker is down. It appends every order.paid confirmation to
// logs/payments.log.
func main() {
	_ = godotenv.Load()
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logrus.Info("starting order.paid consumer")
	if err := queue.StartOrderPaidConsumer(); err != nil {
		logrus.WithError(err).Fatal("consumer stopped")
	}
}
