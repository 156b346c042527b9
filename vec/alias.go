package vec

// GLSL-flavored constructors. BVecN/IVecN/UVecN/FVecN/DVecN mirror the
// bvecN/ivecN/uvecN/fvecN/dvecN families; VecN is the float32 default.

func BVec2(x, y bool) Vec[bool]       { return Of(x, y) }
func BVec3(x, y, z bool) Vec[bool]    { return Of(x, y, z) }
func BVec4(x, y, z, w bool) Vec[bool] { return Of(x, y, z, w) }

func IVec2(x, y int32) Vec[int32]       { return Of(x, y) }
func IVec3(x, y, z int32) Vec[int32]    { return Of(x, y, z) }
func IVec4(x, y, z, w int32) Vec[int32] { return Of(x, y, z, w) }

func UVec2(x, y uint32) Vec[uint32]       { return Of(x, y) }
func UVec3(x, y, z uint32) Vec[uint32]    { return Of(x, y, z) }
func UVec4(x, y, z, w uint32) Vec[uint32] { return Of(x, y, z, w) }

func FVec2(x, y float32) Vec[float32]       { return Of(x, y) }
func FVec3(x, y, z float32) Vec[float32]    { return Of(x, y, z) }
func FVec4(x, y, z, w float32) Vec[float32] { return Of(x, y, z, w) }

func DVec2(x, y float64) Vec[float64]       { return Of(x, y) }
func DVec3(x, y, z float64) Vec[float64]    { return Of(x, y, z) }
func DVec4(x, y, z, w float64) Vec[float64] { return Of(x, y, z, w) }

func Vec2(x, y float32) Vec[float32]       { return FVec2(x, y) }
func Vec3(x, y, z float32) Vec[float32]    { return FVec3(x, y, z) }
func Vec4(x, y, z, w float32) Vec[float32] { return FVec4(x, y, z, w) }
