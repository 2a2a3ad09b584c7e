package checkpoint_test

import (
	"context"
	"errors"
	"testing"

	"code.witanprotocol.io/witan/checkpoint"
	"code.witanprotocol.io/witan/checkpoint/mocks"
	"code.witanprotocol.io/witan/logging"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(t *testing.T, components ...checkpoint.State) *checkpoint.Engine {
	t.Helper()
	eng, err := checkpoint.New(logging.NewTestLogger(), checkpoint.NewDefaultConfig(), components...)
	require.NoError(t, err)
	return eng
}

func TestRegistration(t *testing.T) {
	t.Run("registering the same component twice is fine", testRegisteringSameComponentTwiceIsFine)
	t.Run("registering two components with the same name fails", testRegisteringTwoComponentsWithSameNameFails)
	t.Run("constructor rejects duplicate names", testConstructorRejectsDuplicateNames)
}

func testRegisteringSameComponentTwiceIsFine(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	comp := mocks.NewMockState(ctrl)
	comp.EXPECT().Name().Times(2).Return("governance")

	eng := newEngine(t)
	require.NoError(t, eng.Add(comp, comp))
}

func testRegisteringTwoComponentsWithSameNameFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	comp := mocks.NewMockState(ctrl)
	comp.EXPECT().Name().Times(1).Return("governance")
	comp2 := mocks.NewMockState(ctrl)
	comp2.EXPECT().Name().Times(1).Return("governance")

	eng := newEngine(t, comp)
	require.ErrorIs(t, eng.Add(comp2), checkpoint.ErrComponentWithDuplicateName)
}

func testConstructorRejectsDuplicateNames(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	comp := mocks.NewMockState(ctrl)
	comp.EXPECT().Name().Times(1).Return("netparams")
	comp2 := mocks.NewMockState(ctrl)
	comp2.EXPECT().Name().Times(1).Return("netparams")

	eng, err := checkpoint.New(logging.NewTestLogger(), checkpoint.NewDefaultConfig(), comp, comp2)
	require.ErrorIs(t, err, checkpoint.ErrComponentWithDuplicateName)
	require.Nil(t, eng)
}

func TestScheduling(t *testing.T) {
	t.Run("first call only schedules the next checkpoint", testFirstCallOnlySchedules)
	t.Run("a checkpoint is taken once the interval elapsed", testCheckpointTakenOnceIntervalElapsed)
}

func testFirstCallOnlySchedules(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	comp := mocks.NewMockState(ctrl)
	comp.EXPECT().Name().Times(1).Return("governance")

	eng := newEngine(t, comp)

	// default interval is 10 heights, first call schedules at 15
	cp, err := eng.Checkpoint(5)
	require.NoError(t, err)
	assert.Nil(t, cp)

	cp, err = eng.Checkpoint(14)
	require.NoError(t, err)
	assert.Nil(t, cp)
}

func testCheckpointTakenOnceIntervalElapsed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	comp := mocks.NewMockState(ctrl)
	comp.EXPECT().Name().Times(1).Return("governance")

	eng := newEngine(t, comp)

	cp, err := eng.Checkpoint(5)
	require.NoError(t, err)
	require.Nil(t, cp)

	// when
	comp.EXPECT().Checkpoint().Times(1).Return([]byte(`{"lastId":3}`), nil)
	cp, err = eng.Checkpoint(15)

	// then
	require.NoError(t, err)
	require.NotNil(t, cp)
	assert.EqualValues(t, 15, cp.Height)
	assert.EqualValues(t, []byte(`{"lastId":3}`), cp.Get("governance"))
	assert.NotEmpty(t, cp.Hash)

	// rescheduled 10 heights later
	cp, err = eng.Checkpoint(16)
	require.NoError(t, err)
	assert.Nil(t, cp)

	comp.EXPECT().Checkpoint().Times(1).Return([]byte(`{"lastId":4}`), nil)
	cp, err = eng.Checkpoint(25)
	require.NoError(t, err)
	require.NotNil(t, cp)
	assert.EqualValues(t, 25, cp.Height)
}

func TestMake(t *testing.T) {
	t.Run("an immediate checkpoint ignores the schedule", testMakeIgnoresSchedule)
	t.Run("components without state are left out", testMakeLeavesOutComponentsWithoutState)
}

func testMakeIgnoresSchedule(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	comp := mocks.NewMockState(ctrl)
	comp.EXPECT().Name().Times(1).Return("governance")
	comp.EXPECT().Checkpoint().Times(1).Return([]byte(`{"lastId":1}`), nil)

	eng := newEngine(t, comp)

	cp, err := eng.Make(42)
	require.NoError(t, err)
	require.NotNil(t, cp)
	assert.EqualValues(t, 42, cp.Height)
	require.NoError(t, checkpoint.Validate(cp))
}

func testMakeLeavesOutComponentsWithoutState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gov := mocks.NewMockState(ctrl)
	gov.EXPECT().Name().Times(1).Return("governance")
	gov.EXPECT().Checkpoint().Times(1).Return(nil, nil)
	np := mocks.NewMockState(ctrl)
	np.EXPECT().Name().Times(1).Return("netparams")
	np.EXPECT().Checkpoint().Times(1).Return([]byte(`[{"key":"k","value":"v"}]`), nil)

	eng := newEngine(t, gov, np)

	cp, err := eng.Make(7)
	require.NoError(t, err)
	require.NotNil(t, cp)
	assert.Nil(t, cp.Get("governance"))
	assert.NotNil(t, cp.Get("netparams"))
}

func TestLoad(t *testing.T) {
	t.Run("a checkpoint round-trips through load", testCheckpointRoundTripsThroughLoad)
	t.Run("components are restored parameters first", testComponentsRestoredParametersFirst)
	t.Run("a tampered checkpoint is rejected", testTamperedCheckpointIsRejected)
	t.Run("a checkpoint for an unregistered component is rejected", testCheckpointForUnregisteredComponentIsRejected)
	t.Run("a component error aborts the restore", testComponentErrorAbortsRestore)
}

func testCheckpointRoundTripsThroughLoad(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	govData := []byte(`{"lastId":12}`)
	npData := []byte(`[{"key":"governance.quorumPercent","value":"50"}]`)

	gov := mocks.NewMockState(ctrl)
	gov.EXPECT().Name().Times(1).Return("governance")
	gov.EXPECT().Checkpoint().Times(1).Return(govData, nil)
	np := mocks.NewMockState(ctrl)
	np.EXPECT().Name().Times(1).Return("netparams")
	np.EXPECT().Checkpoint().Times(1).Return(npData, nil)

	eng := newEngine(t, gov, np)
	cp, err := eng.Make(42)
	require.NoError(t, err)

	// fresh components to load the state into
	gov2 := mocks.NewMockState(ctrl)
	gov2.EXPECT().Name().Times(1).Return("governance")
	gov2.EXPECT().Load(gomock.Any(), govData).Times(1).Return(nil)
	np2 := mocks.NewMockState(ctrl)
	np2.EXPECT().Name().Times(1).Return("netparams")
	np2.EXPECT().Load(gomock.Any(), npData).Times(1).Return(nil)

	newEng := newEngine(t, gov2, np2)
	require.NoError(t, newEng.Load(context.Background(), cp))
}

func testComponentsRestoredParametersFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gov := mocks.NewMockState(ctrl)
	gov.EXPECT().Name().Times(1).Return("governance")
	gov.EXPECT().Checkpoint().Times(1).Return([]byte(`{}`), nil)
	np := mocks.NewMockState(ctrl)
	np.EXPECT().Name().Times(1).Return("netparams")
	np.EXPECT().Checkpoint().Times(1).Return([]byte(`[]`), nil)

	eng := newEngine(t, gov, np)
	cp, err := eng.Make(1)
	require.NoError(t, err)

	gov2 := mocks.NewMockState(ctrl)
	gov2.EXPECT().Name().Times(1).Return("governance")
	np2 := mocks.NewMockState(ctrl)
	np2.EXPECT().Name().Times(1).Return("netparams")

	gomock.InOrder(
		np2.EXPECT().Load(gomock.Any(), gomock.Any()).Times(1).Return(nil),
		gov2.EXPECT().Load(gomock.Any(), gomock.Any()).Times(1).Return(nil),
	)

	newEng := newEngine(t, gov2, np2)
	require.NoError(t, newEng.Load(context.Background(), cp))
}

func testTamperedCheckpointIsRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gov := mocks.NewMockState(ctrl)
	gov.EXPECT().Name().Times(1).Return("governance")
	gov.EXPECT().Checkpoint().Times(2).Return([]byte(`{"lastId":12}`), nil)

	eng := newEngine(t, gov)

	// tampered state
	cp, err := eng.Make(42)
	require.NoError(t, err)
	cp.Set("governance", []byte(`{"lastId":9000}`))

	err = eng.Load(context.Background(), cp)
	require.ErrorIs(t, err, checkpoint.ErrCheckpointHashIncorrect)

	// tampered height
	cp, err = eng.Make(42)
	require.NoError(t, err)
	cp.Height = 1

	err = eng.Load(context.Background(), cp)
	require.ErrorIs(t, err, checkpoint.ErrCheckpointHashIncorrect)
}

func testCheckpointForUnregisteredComponentIsRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gov := mocks.NewMockState(ctrl)
	gov.EXPECT().Name().Times(1).Return("governance")
	gov.EXPECT().Checkpoint().Times(1).Return([]byte(`{"lastId":12}`), nil)

	eng := newEngine(t, gov)
	cp, err := eng.Make(42)
	require.NoError(t, err)

	// an engine without the governance component cannot restore it
	np := mocks.NewMockState(ctrl)
	np.EXPECT().Name().Times(1).Return("netparams")

	newEng := newEngine(t, np)
	err = newEng.Load(context.Background(), cp)
	require.ErrorIs(t, err, checkpoint.ErrUnknownCheckpointName)
}

func testComponentErrorAbortsRestore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gov := mocks.NewMockState(ctrl)
	gov.EXPECT().Name().Times(1).Return("governance")
	gov.EXPECT().Checkpoint().Times(1).Return([]byte(`{"lastId":12}`), nil)

	eng := newEngine(t, gov)
	cp, err := eng.Make(42)
	require.NoError(t, err)

	loadErr := errors.New("random error")
	gov2 := mocks.NewMockState(ctrl)
	gov2.EXPECT().Name().Times(1).Return("governance")
	gov2.EXPECT().Load(gomock.Any(), gomock.Any()).Times(1).Return(loadErr)

	newEng := newEngine(t, gov2)
	err = newEng.Load(context.Background(), cp)
	require.ErrorIs(t, err, loadErr)
}
