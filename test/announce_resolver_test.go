package test

import (
	"fedi_relay/dal"
	"fedi_relay/dto"
	"fedi_relay/logic"
	"fedi_relay/test/mocks"
	"testing"
	"time"

	"github.com/spaolacci/murmur3"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

// hashOf mirrors how verdicts are keyed in storage.
func hashOf(objectUrl string) int64 {
	return int64(murmur3.Sum64([]byte(objectUrl)))
}

type announceHarness struct {
	repo     *mocks.MockIRepo
	fetcher  *mocks.MockIObjectFetcher
	filters  *mocks.MockIFilters
	resolver logic.IAnnounceResolver

	// In-memory stand-in for the boost verdict table
	verdicts map[int64]*dal.BoostVerdict
}

func setupAnnounceHarness(t *testing.T) *announceHarness {

	ctrl := gomock.NewController(t)
	cfg := newTestConfig()
	h := &announceHarness{
		repo:     mocks.NewMockIRepo(ctrl),
		fetcher:  mocks.NewMockIObjectFetcher(ctrl),
		filters:  mocks.NewMockIFilters(ctrl),
		verdicts: map[int64]*dal.BoostVerdict{},
	}

	h.repo.EXPECT().GetBoostVerdict(gomock.Any(), gomock.Any()).
		DoAndReturn(func(user string, objectHash int64) (*dal.BoostVerdict, error) {
			return h.verdicts[objectHash], nil
		}).
		AnyTimes()
	h.repo.EXPECT().PutBoostVerdict(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(user string, objectHash int64, verdict *dal.BoostVerdict) (bool, error) {
			if _, exists := h.verdicts[objectHash]; exists {
				return false, nil
			}
			h.verdicts[objectHash] = verdict
			return true, nil
		}).
		AnyTimes()

	h.filters.EXPECT().IsBlocked(gomock.Any(), gomock.Any()).Return(false).AnyTimes()
	h.filters.EXPECT().IsFiltered(gomock.Any()).Return(false).AnyTimes()
	h.filters.EXPECT().DangerousMarkup(gomock.Any()).Return(false).AnyTimes()
	h.filters.EXPECT().InvalidCiphertext(gomock.Any()).Return(false).AnyTimes()
	h.filters.EXPECT().IsQuestionFiltered(gomock.Any(), gomock.Any()).Return(false).AnyTimes()

	h.resolver = logic.NewAnnounceResolver(
		cfg, quietLogger(ctrl), h.repo, h.fetcher, h.filters, quietMetrics(ctrl))
	return h
}

func makeAnnounce(objectUrl string) *dto.ActivityInBase {
	return &dto.ActivityInBase{
		Id:     "https://other.example/activities/1",
		Type:   "Announce",
		Actor:  "https://other.example/users/booster",
		Object: objectUrl,
	}
}

func makeRemoteNote(objectUrl string, publishedAgo time.Duration) *dto.RawObject {
	return dto.NewRawObject(map[string]any{
		"id":           objectUrl,
		"type":         "Note",
		"attributedTo": "https://origin.example/users/author",
		"content":      "<p>hello fediverse</p>",
		"published":    time.Now().UTC().Add(-publishedAgo).Format(time.RFC3339),
	})
}

func TestAnnounce_AcceptedAndWrapped(t *testing.T) {

	h := setupAnnounceHarness(t)
	objectUrl := "https://origin.example/users/author/statuses/123"
	h.fetcher.EXPECT().FetchObject(objectUrl).
		Return(makeRemoteNote(objectUrl, 24*time.Hour), nil).
		Times(1)

	res, err := h.resolver.Resolve("birb", makeAnnounce(objectUrl))

	assert.Nil(t, err)
	assert.NotNil(t, res)
	assert.Equal(t, "Create", res.MustGetString("type"))
	assert.Equal(t, objectUrl, res.MustGetString("id"))
	assert.Equal(t, objectUrl, res.MustGetString("object.id"))
	assert.Equal(t, dal.BoostAccepted, h.verdicts[hashOf(objectUrl)].Status)
}

func TestAnnounce_SecondResolveIsCacheHit(t *testing.T) {

	h := setupAnnounceHarness(t)
	objectUrl := "https://origin.example/users/author/statuses/124"
	h.fetcher.EXPECT().FetchObject(objectUrl).
		Return(makeRemoteNote(objectUrl, 24*time.Hour), nil).
		Times(1)

	first, err := h.resolver.Resolve("birb", makeAnnounce(objectUrl))
	assert.Nil(t, err)
	second, err := h.resolver.Resolve("birb", makeAnnounce(objectUrl))
	assert.Nil(t, err)

	assert.Equal(t, first.MustGetString("id"), second.MustGetString("id"))
	assert.Equal(t, first.MustGetString("object.content"), second.MustGetString("object.content"))
}

func TestAnnounce_RejectionIsCachedToo(t *testing.T) {

	h := setupAnnounceHarness(t)
	objectUrl := "https://origin.example/users/author/statuses/125"
	badDoc := dto.NewRawObject(map[string]any{"error": "gone", "id": objectUrl})
	h.fetcher.EXPECT().FetchObject(objectUrl).Return(badDoc, nil).Times(1)

	first, err := h.resolver.Resolve("birb", makeAnnounce(objectUrl))
	assert.Nil(t, err)
	assert.Nil(t, first)
	second, err := h.resolver.Resolve("birb", makeAnnounce(objectUrl))
	assert.Nil(t, err)
	assert.Nil(t, second)

	assert.Equal(t, dal.BoostRejected, h.verdicts[hashOf(objectUrl)].Status)
}

func TestAnnounce_SelfAnnounceDroppedWithoutCaching(t *testing.T) {

	h := setupAnnounceHarness(t)
	announce := &dto.ActivityInBase{
		Id:     "https://other.example/activities/2",
		Type:   "Announce",
		Actor:  "https://other.example/users/booster",
		Object: "https://other.example/users/booster/statuses/99",
	}

	res, err := h.resolver.Resolve("birb", announce)

	assert.Nil(t, err)
	assert.Nil(t, res)
	assert.Empty(t, h.verdicts)
}

func TestAnnounce_FreshnessBoundary(t *testing.T) {

	h := setupAnnounceHarness(t)

	freshUrl := "https://origin.example/users/author/statuses/200"
	h.fetcher.EXPECT().FetchObject(freshUrl).
		Return(makeRemoteNote(freshUrl, 89*24*time.Hour), nil).
		Times(1)
	res, err := h.resolver.Resolve("birb", makeAnnounce(freshUrl))
	assert.Nil(t, err)
	assert.NotNil(t, res)

	staleUrl := "https://origin.example/users/author/statuses/201"
	h.fetcher.EXPECT().FetchObject(staleUrl).
		Return(makeRemoteNote(staleUrl, 91*24*time.Hour), nil).
		Times(1)
	res, err = h.resolver.Resolve("birb", makeAnnounce(staleUrl))
	assert.Nil(t, err)
	assert.Nil(t, res)
	assert.Equal(t, dal.BoostRejected, h.verdicts[hashOf(staleUrl)].Status)
}

func TestAnnounce_UnsupportedTypeRejected(t *testing.T) {

	h := setupAnnounceHarness(t)
	objectUrl := "https://origin.example/users/author/statuses/300"
	doc := dto.NewRawObject(map[string]any{
		"id":           objectUrl,
		"type":         "Event",
		"attributedTo": "https://origin.example/users/author",
		"content":      "come along",
		"published":    time.Now().UTC().Format(time.RFC3339),
	})
	h.fetcher.EXPECT().FetchObject(objectUrl).Return(doc, nil).Times(1)

	res, err := h.resolver.Resolve("birb", makeAnnounce(objectUrl))

	assert.Nil(t, err)
	assert.Nil(t, res)
	assert.Equal(t, dal.BoostRejected, h.verdicts[hashOf(objectUrl)].Status)
}

func TestAnnounce_VideoConvertedToNote(t *testing.T) {

	h := setupAnnounceHarness(t)
	objectUrl := "https://tube.example/videos/objects/400"
	doc := dto.NewRawObject(map[string]any{
		"id":           objectUrl,
		"type":         "Video",
		"name":         "a video",
		"url":          "https://tube.example/w/400",
		"attributedTo": "https://tube.example/accounts/uploader",
		"content":      "watch this",
		"published":    time.Now().UTC().Format(time.RFC3339),
	})
	h.fetcher.EXPECT().FetchObject(objectUrl).Return(doc, nil).Times(1)

	res, err := h.resolver.Resolve("birb", makeAnnounce(objectUrl))

	assert.Nil(t, err)
	assert.NotNil(t, res)
	assert.Equal(t, "Note", res.MustGetString("object.type"))
}
