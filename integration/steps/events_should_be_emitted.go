package steps

import (
	"strconv"

	"code.witanprotocol.io/witan/integration/stubs"
)

func EventsShouldBeEmitted(broker *stubs.BrokerStub, rawCount, eventType string) error {
	count, err := strconv.Atoi(rawCount)
	if err != nil {
		return err
	}
	if got := broker.CountOf(eventType); got != count {
		return formatDiff("invalid event count for "+eventType,
			map[string]string{
				"count": rawCount,
			},
			map[string]string{
				"count": strconv.Itoa(got),
			},
		)
	}
	return nil
}
