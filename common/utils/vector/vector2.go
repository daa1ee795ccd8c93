package vector

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"

	"github.com/ByteArena/box2d"
	"github.com/truckmayhem/truckmayhem/common/utils/number"
	"github.com/vmihailenco/msgpack"
)

type Vector2 struct {
	x float64
	y float64
}

func MakeVector2(x float64, y float64) Vector2 {
	return Vector2{x, y}
}

// Returns a null vector2
func MakeNullVector2() Vector2 {
	return MakeVector2(0, 0)
}

func (v Vector2) Get() (float64, float64) {
	return v.x, v.y
}

func (v Vector2) GetX() float64 {
	return v.x
}

func (v Vector2) GetY() float64 {
	return v.y
}

func (v Vector2) SetX(x float64) Vector2 {
	v.x = x
	return v
}

func (v Vector2) SetY(y float64) Vector2 {
	v.y = y
	return v
}

var floatformat = byte('f')

func (v Vector2) MarshalJSON() ([]byte, error) {
	b := []byte{'['}
	b = strconv.AppendFloat(b, v.x, floatformat, 2, 64)
	b = append(b, byte(','))
	b = strconv.AppendFloat(b, v.y, floatformat, 2, 64)
	return append(b, byte(']')), nil
}

func (v *Vector2) UnmarshalJSON(data []byte) error {
	var xy [2]float64
	if err := json.Unmarshal(data, &xy); err != nil {
		return err
	}

	v.x, v.y = xy[0], xy[1]
	return nil
}

func (v Vector2) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.Encode([]float64{v.x, v.y})
}

func (v *Vector2) DecodeMsgpack(dec *msgpack.Decoder) error {
	var xy []float64
	if err := dec.Decode(&xy); err != nil {
		return err
	}

	if len(xy) != 2 {
		return errors.New("vector2: expected 2 coordinates, got " + strconv.Itoa(len(xy)))
	}

	v.x, v.y = xy[0], xy[1]
	return nil
}

func (a Vector2) Add(b Vector2) Vector2 {
	a.x += b.x
	a.y += b.y
	return a
}

func (a Vector2) Sub(b Vector2) Vector2 {
	a.x -= b.x
	a.y -= b.y
	return a
}

func (a Vector2) Scale(scale float64) Vector2 {
	a.x *= scale
	a.y *= scale
	return a
}

func (a Vector2) Mag() float64 {
	return math.Sqrt(a.MagSq())
}

func (a Vector2) MagSq() float64 {
	return (a.x*a.x + a.y*a.y)
}

func (a Vector2) Normalize() Vector2 {
	mag := a.Mag()
	if mag > 0 {
		return a.Scale(1 / mag)
	}
	return a
}

func (a Vector2) Limit(max float64) Vector2 {

	mSq := a.MagSq()

	if mSq > max*max {
		return a.Normalize().Scale(max)
	}

	return a
}

// Rotate turns the vector by radians (clockwise on a y-down screen)
func (a Vector2) Rotate(radians float64) Vector2 {
	sin, cos := math.Sincos(radians)
	return MakeVector2(
		a.x*cos-a.y*sin,
		a.x*sin+a.y*cos,
	)
}

func (a Vector2) Dot(v Vector2) float64 {
	return a.x*v.x + a.y*v.y
}

func (a Vector2) IsNull() bool {
	return number.IsZero(a.x) && number.IsZero(a.y)
}

func (a Vector2) Equals(b Vector2) bool {
	return b.Sub(a).IsNull()
}

func (a Vector2) String() string {
	return "<Vector2(" + number.FloatToStr(a.x, 3) + ", " + number.FloatToStr(a.y, 3) + ")>"
}

func (a Vector2) ToFloatArray() [2]float64 {
	return [2]float64{a.GetX(), a.GetY()}
}

func (a Vector2) ToB2Vec2() box2d.B2Vec2 {
	return box2d.MakeB2Vec2(a.GetX(), a.GetY())
}

func FromB2Vec2(v box2d.B2Vec2) Vector2 {
	return MakeVector2(v.X, v.Y)
}
