package bus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQosFor(t *testing.T) {
	assert.Equal(t, byte(1), qosFor("elder/event/alert"))
	assert.Equal(t, byte(1), qosFor("elder/event/actuationResult"))
	assert.Equal(t, byte(1), qosFor(" elder/event/alert "))

	assert.Equal(t, byte(0), qosFor("elder/sensor/motion"))
	assert.Equal(t, byte(0), qosFor("elder/sensor/env"))
	assert.Equal(t, byte(0), qosFor("elder/cloud/motion"))
}
